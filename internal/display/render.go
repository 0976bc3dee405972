package display

import (
	"strconv"
	"strings"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/models"
)

const (
	NoLastName = "None"
	PremiumYes = "Yes"
	PremiumNo  = "No"
)

// RenderProfile builds the fixed six-line profile block.
// Values are written as-is; callers own any escaping.
func RenderProfile(p *models.UserProfile) string {
	lastName := p.LastName
	if lastName == "" {
		lastName = NoLastName
	}
	premium := PremiumNo
	if p.IsPremium {
		premium = PremiumYes
	}

	// Username keeps its "@" even when empty.
	fields := [][2]string{
		{"ID", strconv.FormatInt(p.ID, 10)},
		{"First Name", p.FirstName},
		{"Last Name", lastName},
		{"Username", "@" + p.Username},
		{"Language", p.LanguageCode},
		{"Premium", premium},
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString("<p><strong>")
		b.WriteString(f[0])
		b.WriteString(":</strong> ")
		b.WriteString(f[1])
		b.WriteString("</p>\n")
	}
	return b.String()
}
