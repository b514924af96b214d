package fetch

import (
	"net/url"
	"strings"
)

// Platform is a job board whose pages need their own selectors
type Platform string

// Known job boards
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

type platformRules struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platforms = []platformRules{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".posting-description", ".section-wrapper.page-full-width", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
	},
}

// commonNoiseSelectors strip application forms and legal boilerplate on every board
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	".eeo-statement",
	".eeo-section",
	".voluntary-disclosure",
	".legal-disclosure",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(urlStr string) Platform {
	if rules := rulesFor(urlStr); rules != nil {
		return rules.platform
	}
	return PlatformUnknown
}

// SelectorsFor returns the content and noise selectors to use for a page
// fetched from urlStr. Unknown hosts get JobPostingSelectors.
func SelectorsFor(urlStr string) (content, noise []string) {
	noise = append([]string(nil), commonNoiseSelectors...)
	rules := rulesFor(urlStr)
	if rules == nil {
		return JobPostingSelectors(), noise
	}
	return rules.content, append(noise, rules.noise...)
}

func rulesFor(urlStr string) *platformRules {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil
	}
	host := strings.ToLower(parsed.Hostname())
	for i := range platforms {
		for _, h := range platforms[i].hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return &platforms[i]
			}
		}
	}
	return nil
}
