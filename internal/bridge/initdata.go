package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/models"
)

var ErrMalformedInitData = errors.New("malformed init data")

// LaunchDataKey is the launch-hash parameter that wraps the init data string.
const LaunchDataKey = "tgWebAppData"

// ParseInitData decodes the URL-encoded launch string a host passes to a mini-app
// (e.g. "query_id=...&user=%7B...%7D&auth_date=...&hash=..."). A full launch hash
// ("#tgWebAppData=<encoded>&tgWebAppVersion=...") is unwrapped first.
// The hash is copied but never checked. Empty input yields empty init data with no user.
func ParseInitData(raw string) (*models.InitDataUnsafe, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "#")

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInitData, err)
	}
	if values.Has(LaunchDataKey) {
		if values, err = url.ParseQuery(values.Get(LaunchDataKey)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInitData, LaunchDataKey, err)
		}
	}

	data := &models.InitDataUnsafe{
		QueryID:      values.Get("query_id"),
		ChatType:     values.Get("chat_type"),
		ChatInstance: values.Get("chat_instance"),
		StartParam:   values.Get("start_param"),
		Hash:         values.Get("hash"),
	}

	if data.User, err = parseUser(values.Get("user")); err != nil {
		return nil, fmt.Errorf("%w: user: %v", ErrMalformedInitData, err)
	}
	if data.Receiver, err = parseUser(values.Get("receiver")); err != nil {
		return nil, fmt.Errorf("%w: receiver: %v", ErrMalformedInitData, err)
	}

	if v := values.Get("auth_date"); v != "" {
		if data.AuthDate, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: auth_date: %v", ErrMalformedInitData, err)
		}
	}
	if v := values.Get("can_send_after"); v != "" {
		if data.CanSendAfter, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("%w: can_send_after: %v", ErrMalformedInitData, err)
		}
	}

	return data, nil
}

func parseUser(s string) (*models.UserProfile, error) {
	if s == "" {
		return nil, nil
	}
	var p models.UserProfile
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
