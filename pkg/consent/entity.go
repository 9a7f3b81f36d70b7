package consent

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one cookie-consent decision with attribution data.
type Record struct {
	ID              uuid.UUID `json:"id"`
	SessionID       string    `json:"sessionId"`
	ConsentGiven    bool      `json:"consentGiven"`
	ConsentType     string    `json:"consentType"`
	FingerprintHash string    `json:"fingerprintHash,omitempty"`
	UserAgent       string    `json:"userAgent,omitempty"`
	Referrer        string    `json:"referrer,omitempty"`
	LandingPage     string    `json:"landingPage,omitempty"`
	UTMSource       string    `json:"utmSource,omitempty"`
	UTMMedium       string    `json:"utmMedium,omitempty"`
	UTMCampaign     string    `json:"utmCampaign,omitempty"`
	UTMTerm         string    `json:"utmTerm,omitempty"`
	UTMContent      string    `json:"utmContent,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Repository persists consent records.
type Repository interface {
	Record(ctx context.Context, rec Record) (uuid.UUID, error)
}
