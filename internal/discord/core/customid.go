package core

import (
	"fmt"
	"strings"
)

const (
	// CustomIDSeparator joins the encoded parts
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100
)

// CustomID is the routing envelope carried in a component or modal
// custom ID: domain:action[:target[:args...]]. The target is typically
// the entity the component acts on, such as a draft ID.
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

// NewCustomID creates a custom ID for a domain action
func NewCustomID(domain, action string) *CustomID {
	return &CustomID{
		Domain: domain,
		Action: action,
	}
}

// WithTarget sets the target
func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

// WithArgs appends arguments
func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Arg returns the i-th argument, or "" when absent.
func (c *CustomID) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// Encode renders the custom ID as a string. Every part must be free of
// the separator, and args require a target so the decoded positions
// stay unambiguous.
func (c *CustomID) Encode() (string, error) {
	if c.Domain == "" || c.Action == "" {
		return "", fmt.Errorf("custom ID needs a domain and an action")
	}
	if c.Target == "" && len(c.Args) > 0 {
		return "", fmt.Errorf("custom ID args require a target")
	}

	parts := []string{c.Domain, c.Action}
	if c.Target != "" {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, part := range parts {
		if strings.Contains(part, CustomIDSeparator) {
			return "", fmt.Errorf("custom ID part %q contains the separator", part)
		}
	}

	result := strings.Join(parts, CustomIDSeparator)
	if len(result) > MaxCustomIDLength {
		return "", fmt.Errorf("custom ID exceeds %d characters: %q", MaxCustomIDLength, result)
	}

	return result, nil
}

// MustEncode is Encode for IDs built from trusted literals; it panics
// on error.
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// ParseCustomID decodes a custom ID string.
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, fmt.Errorf("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid custom ID %q: expected domain:action", customID)
	}

	result := &CustomID{
		Domain: parts[0],
		Action: parts[1],
	}
	if len(parts) > 2 {
		result.Target = parts[2]
	}
	if len(parts) > 3 {
		result.Args = parts[3:]
	}

	return result, nil
}

// CustomIDBuilder stamps a fixed domain onto every ID it builds, so a
// router's components all route back to it.
type CustomIDBuilder struct {
	domain string
}

// NewCustomIDBuilder creates a builder for a domain
func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

// Domain returns the builder's domain
func (b *CustomIDBuilder) Domain() string {
	return b.domain
}

// Build starts a custom ID for an action
func (b *CustomIDBuilder) Build(action string) *CustomID {
	return NewCustomID(b.domain, action)
}

// Encode renders an action/target/args custom ID in one call.
func (b *CustomIDBuilder) Encode(action, target string, args ...string) string {
	return b.Build(action).WithTarget(target).WithArgs(args...).MustEncode()
}
