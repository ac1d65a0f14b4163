// Package marketing builds campaign-tagged links to the storefront.
package marketing

import (
	"math/rand"
	"net/url"

	"simuweb/internal/model"
)

// UTMParams are the campaign parameters appended to a link.
type UTMParams struct {
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
	Term     string `json:"utm_term"`
	Content  string `json:"utm_content"`
}

// BuildRequest represents the request payload for building a campaign URL.
type BuildRequest struct {
	BaseURL string `json:"baseUrl"`
	UTMParams
}

// BuildResponse is returned with the generated URL.
type BuildResponse struct {
	URL string `json:"url"`
}

var presets = struct {
	source, medium, campaign, term, content []string
}{
	source:   []string{"google", "facebook", "newsletter"},
	medium:   []string{"cpc", "social", "email"},
	campaign: []string{"summer_sale", "new_product", "promo_launch"},
	term:     []string{"running_shoes", "acoustic_guitar", "free_trial"},
	content:  []string{"logolink", "textlink", "banner_ad"},
}

// BuildURL sets every non-empty parameter on base and removes the empty ones.
// Query parameters other than the utm_* keys are kept as they are.
func BuildURL(base string, p UTMParams) (string, error) {
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", model.ErrInvalidURL
	}

	q := u.Query()
	for key, value := range p.fields() {
		if value == "" {
			q.Del(key)
			continue
		}
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// RandomParams picks one preset value for every parameter.
func RandomParams(r *rand.Rand) UTMParams {
	pick := func(options []string) string {
		return options[r.Intn(len(options))]
	}
	return UTMParams{
		Source:   pick(presets.source),
		Medium:   pick(presets.medium),
		Campaign: pick(presets.campaign),
		Term:     pick(presets.term),
		Content:  pick(presets.content),
	}
}

func (p UTMParams) fields() map[string]string {
	return map[string]string{
		"utm_source":   p.Source,
		"utm_medium":   p.Medium,
		"utm_campaign": p.Campaign,
		"utm_term":     p.Term,
		"utm_content":  p.Content,
	}
}
