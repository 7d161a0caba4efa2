package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Pranav212nair/xeno/internal/auth"
)

// errorBody is the uniform error shape every endpoint returns. Details carry
// raw error text only when the server is configured to expose it.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithField("error", err).Error("failed to encode response")
	}
}

// writeError logs the full error server-side and sends the uniform body. The
// client sees raw error text only when expose_errors is on.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	fields := logrus.Fields{
		"status": status,
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		fields["tenant_id"] = claims.TenantID
		fields["user_id"] = claims.UserID
	}
	if err != nil {
		fields["error"] = err
	}
	if status >= http.StatusInternalServerError {
		logrus.WithFields(fields).Error(msg)
	} else {
		logrus.WithFields(fields).Warn(msg)
	}

	body := errorBody{Error: msg}
	if err != nil && a.Cfg != nil && a.Cfg.Server.ExposeErrors {
		body.Details = err.Error()
	}
	a.writeJSON(w, status, body)
}

func recoveredError(rec interface{}) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", rec)
}
