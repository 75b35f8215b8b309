package domain

import "strings"

// Permission is a single access right on a profile. WRITE does not imply
// READ; callers that need both must hold both.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

// Valid reports whether p is one of the known permissions.
func (p Permission) Valid() bool {
	return p == PermissionRead || p == PermissionWrite
}

// PermissionSet is a set over {read, write}. The zero value is the empty
// set. A Share never carries an empty set; "no access" is the absence of
// a Share, not a Share with no bits.
type PermissionSet []Permission

// NewPermissionSet builds a normalized set from the given permissions,
// dropping unknown values and duplicates.
func NewPermissionSet(perms ...Permission) PermissionSet {
	out := make(PermissionSet, 0, len(perms))
	for _, p := range perms {
		if !p.Valid() || out.Contains(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ParsePermissionSet parses a list of permission labels ("read", "write").
// Unknown labels are ignored, matching NewPermissionSet.
func ParsePermissionSet(labels []string) PermissionSet {
	perms := make([]Permission, 0, len(labels))
	for _, l := range labels {
		perms = append(perms, Permission(strings.ToLower(strings.TrimSpace(l))))
	}
	return NewPermissionSet(perms...)
}

// Contains reports whether the set includes p.
func (s PermissionSet) Contains(p Permission) bool {
	for _, have := range s {
		if have == p {
			return true
		}
	}
	return false
}

// Union returns a new normalized set holding every permission in s or other.
func (s PermissionSet) Union(other PermissionSet) PermissionSet {
	return NewPermissionSet(append(append(PermissionSet{}, s...), other...)...)
}

// IsEmpty reports whether the set has no permissions.
func (s PermissionSet) IsEmpty() bool { return len(s) == 0 }

// Labels returns the string form of each permission, for transport and
// storage encoding.
func (s PermissionSet) Labels() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = string(p)
	}
	return out
}

// Encode renders the set as a space-delimited string for storage.
func (s PermissionSet) Encode() string {
	return strings.Join(s.Labels(), " ")
}

// DecodePermissionSet parses the space-delimited storage encoding.
func DecodePermissionSet(encoded string) PermissionSet {
	return ParsePermissionSet(strings.Fields(encoded))
}
