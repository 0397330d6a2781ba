// Package asmid parses .NET assembly display names of the form
// "Name, Version=1.2.3.4, Culture=neutral, PublicKeyToken=b77a5c561934e089".
package asmid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is the four-part assembly version.
type Version struct {
	Major    uint16 `json:"major"`
	Minor    uint16 `json:"minor"`
	Build    uint16 `json:"build"`
	Revision uint16 `json:"revision"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Identity is a parsed assembly identity. Only Name is mandatory; Culture
// is empty for the neutral culture and PublicKeyToken is empty when absent.
type Identity struct {
	Name           string  `json:"name"`
	Version        Version `json:"version"`
	Culture        string  `json:"culture,omitempty"`
	PublicKeyToken string  `json:"public_key_token,omitempty"`
}

func (i Identity) String() string {
	var sb strings.Builder
	sb.WriteString(i.Name)
	sb.WriteString(", Version=")
	sb.WriteString(i.Version.String())
	sb.WriteString(", Culture=")
	if i.Culture == "" {
		sb.WriteString("neutral")
	} else {
		sb.WriteString(i.Culture)
	}
	sb.WriteString(", PublicKeyToken=")
	if i.PublicKeyToken == "" {
		sb.WriteString("null")
	} else {
		sb.WriteString(i.PublicKeyToken)
	}
	return sb.String()
}

// Parse parses an assembly display name. Unknown properties are ignored;
// a missing or malformed mandatory part is an error.
func Parse(display string) (Identity, error) {
	parts := strings.Split(display, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Identity{}, errors.New("assembly identity: empty name")
	}
	id := Identity{Name: name}

	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Identity{}, errors.Errorf("assembly identity: malformed property %q", strings.TrimSpace(part))
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch strings.ToLower(key) {
		case "version":
			v, err := parseVersion(value)
			if err != nil {
				return Identity{}, err
			}
			id.Version = v
		case "culture", "language":
			if !strings.EqualFold(value, "neutral") {
				id.Culture = value
			}
		case "publickeytoken":
			if !strings.EqualFold(value, "null") {
				id.PublicKeyToken = strings.ToLower(value)
			}
		}
	}
	return id, nil
}

func parseVersion(s string) (Version, error) {
	fields := strings.Split(s, ".")
	if len(fields) == 0 || len(fields) > 4 {
		return Version{}, errors.Errorf("assembly identity: bad version %q", s)
	}
	var nums [4]uint16
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return Version{}, errors.Wrapf(err, "assembly identity: bad version %q", s)
		}
		nums[i] = uint16(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Build: nums[2], Revision: nums[3]}, nil
}
