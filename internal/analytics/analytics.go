// internal/analytics/analytics.go
//
// Pure aggregation math over a tenant's already-scoped rows. Every ratio has a
// defined zero for empty denominators so a fresh campaign never produces NaN
// or a division panic.
package analytics

import (
	"math"
	"sort"

	"github.com/Pranav212nair/xeno/internal/model"
)

// CampaignROI is revenue over cost, one decimal place. Zero when either side
// is zero.
func CampaignROI(c model.Campaign) float64 {
	if c.Revenue <= 0 || c.Cost <= 0 {
		return 0
	}
	return round1(c.Revenue / c.Cost)
}

// CampaignCTR is clicked over sent as a percentage, one decimal place. Zero
// when nothing was sent.
func CampaignCTR(c model.Campaign) float64 {
	if c.Sent <= 0 {
		return 0
	}
	return round1(float64(c.Clicked) / float64(c.Sent) * 100)
}

// TotalRevenue sums campaign-influenced revenue.
func TotalRevenue(campaigns []model.Campaign) float64 {
	var sum float64
	for _, c := range campaigns {
		sum += c.Revenue
	}
	return sum
}

// TotalCost sums campaign spend.
func TotalCost(campaigns []model.Campaign) float64 {
	var sum float64
	for _, c := range campaigns {
		sum += c.Cost
	}
	return sum
}

// ActiveCount counts campaigns currently live.
func ActiveCount(campaigns []model.Campaign) int {
	var n int
	for _, c := range campaigns {
		if c.Status == model.CampaignStatusLive {
			n++
		}
	}
	return n
}

// ChannelStats is the per-channel rollup for the analytics endpoint.
type ChannelStats struct {
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Count   int     `json:"count"`
}

// ChannelPerformance groups campaigns by channel.
func ChannelPerformance(campaigns []model.Campaign) map[string]ChannelStats {
	perf := make(map[string]ChannelStats)
	for _, c := range campaigns {
		st := perf[c.Channel]
		st.Revenue += c.Revenue
		st.Cost += c.Cost
		st.Count++
		perf[c.Channel] = st
	}
	return perf
}

// TopCampaign is one row of the revenue leaderboard.
type TopCampaign struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Channel string  `json:"channel"`
	ROI     float64 `json:"roi"`
}

// TopCampaigns returns the n highest-revenue campaigns with ROI at two
// decimal places.
func TopCampaigns(campaigns []model.Campaign, n int) []TopCampaign {
	sorted := make([]model.Campaign, len(campaigns))
	copy(sorted, campaigns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue > sorted[j].Revenue
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	top := make([]TopCampaign, 0, len(sorted))
	for _, c := range sorted {
		roi := 0.0
		if c.Cost > 0 {
			roi = round2(c.Revenue / c.Cost)
		}
		top = append(top, TopCampaign{Name: c.Name, Revenue: c.Revenue, Channel: c.Channel, ROI: roi})
	}
	return top
}

// AvgROI is the mean of per-campaign revenue/cost ratios, two decimal places.
// A campaign with zero cost contributes zero; no campaigns yields zero.
func AvgROI(campaigns []model.Campaign) float64 {
	if len(campaigns) == 0 {
		return 0
	}
	var sum float64
	for _, c := range campaigns {
		if c.Cost > 0 {
			sum += c.Revenue / c.Cost
		}
	}
	return round2(sum / float64(len(campaigns)))
}

// LifecycleBuckets fills the fixed dashboard buckets from raw counts. Stages
// outside the four known ones are dropped.
type LifecycleBuckets struct {
	New     int `json:"new"`
	Active  int `json:"active"`
	AtRisk  int `json:"at_risk"`
	Churned int `json:"churned"`
}

func Lifecycle(counts map[string]int) LifecycleBuckets {
	return LifecycleBuckets{
		New:     counts[model.LifecycleNew],
		Active:  counts[model.LifecycleActive],
		AtRisk:  counts[model.LifecycleAtRisk],
		Churned: counts[model.LifecycleChurned],
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
