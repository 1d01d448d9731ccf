package sqlsafe

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// Finding describes a value that libinjection recognises as a SQL injection pattern.
type Finding struct {
	Parameter   string
	Fingerprint string
}

// Inspect reports a Finding for string values that look like SQL injection, nil otherwise.
// Bound parameters are not affected by such values; callers use this for auditing.
func Inspect(name string, value any) *Finding {
	s, ok := value.(string)
	if !ok {
		return nil
	}

	isSQLi, fingerprint := libinjection.IsSQLi(s)
	if !isSQLi {
		return nil
	}

	return &Finding{
		Parameter:   name,
		Fingerprint: string(fingerprint),
	}
}
