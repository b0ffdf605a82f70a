package logging

import (
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"strings"
)

// secretKeyPatterns are substrings that mark an attribute or env key as
// sensitive. Matching is case-insensitive.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes identify sensitive values regardless of key name.
var tokenPrefixes = []string{
	"ghp_", "gho_", "ghu_", "ghs_", "ghr_", "github_pat_",
	"sk-",
	"AKIA",
	"xoxb-", "xoxp-", "xoxa-", "xoxr-",
}

// ShouldMask reports whether key names a sensitive value.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue keeps the last four characters of value. Short values are
// fully masked.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL hides the password of a URL with embedded credentials.
// Unparseable URLs are returned unchanged.
func MaskURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}
	password, ok := parsed.User.Password()
	if !ok || password == "" {
		return rawURL
	}
	parsed.User = url.UserPassword(parsed.User.Username(), MaskValue(password))
	return parsed.String()
}

// MaskSecrets returns a copy of env with sensitive values masked.
func MaskSecrets(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	masked := maps.Clone(env)
	for k, v := range masked {
		if ShouldMask(k) || ContainsTokenPrefix(v) {
			masked[k] = MaskValue(v)
		}
	}
	return masked
}

// redactAttr masks sensitive attribute values. It is installed as the
// ReplaceAttr hook of every handler built by this package.
func redactAttr(_ []string, a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		switch {
		case ShouldMask(a.Key), ContainsTokenPrefix(s):
			return slog.String(a.Key, MaskValue(s))
		case strings.Contains(s, "://"):
			return slog.String(a.Key, MaskURL(s))
		}
	case slog.KindAny:
		if env, ok := v.Any().(map[string]string); ok {
			return slog.Any(a.Key, MaskSecrets(env))
		}
		if ShouldMask(a.Key) {
			return slog.String(a.Key, MaskValue(fmt.Sprint(v.Any())))
		}
	}
	return a
}
