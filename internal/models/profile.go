package models

import "errors"

// UserProfile is the user record the host platform exposes to a mini-app.
// JSON names follow the platform's own casing so the record can be forwarded as-is.
type UserProfile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`

	// Optional fields
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`

	// Sent by the platform for some clients only
	PhotoURL              string `json:"photo_url,omitempty"`
	IsBot                 bool   `json:"is_bot,omitempty"`
	AllowsWriteToPM       bool   `json:"allows_write_to_pm,omitempty"`
	AddedToAttachmentMenu bool   `json:"added_to_attachment_menu,omitempty"`
}

var (
	ErrMissingUserID    = errors.New("user id is required")
	ErrMissingFirstName = errors.New("user first_name is required")
)

// Validate checks the fields the platform always sends.
func (p *UserProfile) Validate() error {
	if p.ID == 0 {
		return ErrMissingUserID
	}
	if p.FirstName == "" {
		return ErrMissingFirstName
	}
	return nil
}

// InitDataUnsafe is the raw launch payload handed to a mini-app. Nothing in it
// has been checked against the hash.
type InitDataUnsafe struct {
	QueryID      string       `json:"query_id,omitempty"`
	User         *UserProfile `json:"user,omitempty"`
	Receiver     *UserProfile `json:"receiver,omitempty"`
	ChatType     string       `json:"chat_type,omitempty"`
	ChatInstance string       `json:"chat_instance,omitempty"`
	StartParam   string       `json:"start_param,omitempty"`
	CanSendAfter int          `json:"can_send_after,omitempty"`
	AuthDate     int64        `json:"auth_date,omitempty"`
	Hash         string       `json:"hash,omitempty"`
}
