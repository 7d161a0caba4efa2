package api

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Typed request schemas. Each body is decoded into one of these and validated
// before any storage access.

type registerRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
	ShopDomain  string `json:"shopDomain"`
}

func (r *registerRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email is malformed")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// shopDomainOrDefault derives a shop domain from the company name when the
// caller did not supply one.
func (r *registerRequest) shopDomainOrDefault() string {
	if r.ShopDomain != "" {
		return r.ShopDomain
	}
	slug := strings.ToLower(strings.TrimSpace(r.CompanyName))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "my-company"
	}
	return slug + ".myshopify.com"
}

func (r *registerRequest) companyNameOrDefault() string {
	if strings.TrimSpace(r.CompanyName) == "" {
		return "My Company"
	}
	return r.CompanyName
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type createCampaignRequest struct {
	Name      string   `json:"name"`
	Channel   string   `json:"channel"`
	SegmentID *string  `json:"segmentId"`
	Budget    *float64 `json:"budget"`
}

func (r *createCampaignRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Channel) == "" {
		return errors.New("channel is required")
	}
	if r.SegmentID != nil {
		if _, err := uuid.Parse(*r.SegmentID); err != nil {
			return errors.New("segmentId is malformed")
		}
	}
	if r.Budget != nil && *r.Budget < 0 {
		return errors.New("budget must not be negative")
	}
	return nil
}

type updateCampaignRequest struct {
	Name      *string `json:"name"`
	Channel   *string `json:"channel"`
	Status    *string `json:"status"`
	SegmentID *string `json:"segmentId"`
}

func (r *updateCampaignRequest) Validate() error {
	if r.Name == nil && r.Channel == nil && r.Status == nil && r.SegmentID == nil {
		return errors.New("at least one field is required")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	if r.Channel != nil && strings.TrimSpace(*r.Channel) == "" {
		return errors.New("channel must not be empty")
	}
	if r.SegmentID != nil {
		if _, err := uuid.Parse(*r.SegmentID); err != nil {
			return errors.New("segmentId is malformed")
		}
	}
	return nil
}

type createSegmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (r *createSegmentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func (r *createSegmentRequest) typeOrDefault() string {
	if r.Type == "" {
		return "custom"
	}
	return r.Type
}

type shopifySyncRequest struct {
	AccessToken string `json:"accessToken"`
	ShopDomain  string `json:"shopDomain"`
}

func (r *shopifySyncRequest) Validate() error {
	if strings.TrimSpace(r.AccessToken) == "" {
		return errors.New("accessToken is required")
	}
	if strings.TrimSpace(r.ShopDomain) == "" {
		return errors.New("shopDomain is required")
	}
	return nil
}
