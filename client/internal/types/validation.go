package types

import "strings"

// CleanTargets strips each target down to its non-blank fields and validates
// that every target keeps at least one identifier. The returned slice is
// ready to be serialized as the "details" payload field.
//
// Validation failures reject the whole batch; no cleaned prefix is returned.
func CleanTargets(targets []EnrichmentTarget) ([]map[string]string, error) {
	if len(targets) == 0 {
		return nil, &ValidationError{Msg: "at least one person is required"}
	}

	details := make([]map[string]string, 0, len(targets))
	for _, t := range targets {
		cleaned := map[string]string{}
		if v := strings.TrimSpace(t.Email); v != "" {
			cleaned["email"] = t.Email
		}
		if v := strings.TrimSpace(t.LinkedInURL); v != "" {
			cleaned["linkedin_url"] = t.LinkedInURL
		}
		if len(cleaned) == 0 {
			return nil, &ValidationError{Msg: "each person must have either a LinkedIn URL or email address"}
		}
		details = append(details, cleaned)
	}
	return details, nil
}
