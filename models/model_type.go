// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the shared value types of the sync engine:
// data-type identifiers and sets, persisted transport data, invalidation
// payloads and sync-cycle reports. Everything here has value semantics and
// is safe to copy across sequences.
package models

import (
	"sort"
	"strings"
)

// ModelType identifies one category of syncable entity (bookmarks,
// passwords, ...). The zero value is Unspecified and never syncs.
type ModelType int

const (
	Unspecified ModelType = iota
	Bookmarks
	Preferences
	Passwords
	Autofill
	AutofillWalletData
	AutofillWalletOffer
	Themes
	TypedURLs
	Extensions
	Apps
	Sessions
	DeviceInfo
	HistoryDeleteDirectives
	UserEvents
	SecurityEvents
	SharingMessage
	ProxyTabs
	// Nigori carries encryption keys and metadata. Its lifecycle is managed
	// by the engine backend directly, not by the generic datatype manager.
	Nigori

	modelTypeCount
)

var modelTypeNames = map[ModelType]string{
	Unspecified:             "UNSPECIFIED",
	Bookmarks:               "BOOKMARK",
	Preferences:             "PREFERENCE",
	Passwords:               "PASSWORD",
	Autofill:                "AUTOFILL",
	AutofillWalletData:      "AUTOFILL_WALLET",
	AutofillWalletOffer:     "AUTOFILL_OFFER",
	Themes:                  "THEME",
	TypedURLs:               "TYPED_URL",
	Extensions:              "EXTENSION",
	Apps:                    "APP",
	Sessions:                "SESSION",
	DeviceInfo:              "DEVICE_INFO",
	HistoryDeleteDirectives: "HISTORY_DELETE_DIRECTIVE",
	UserEvents:              "USER_EVENT",
	SecurityEvents:          "SECURITY_EVENT",
	SharingMessage:          "SHARING_MESSAGE",
	ProxyTabs:               "PROXY_TABS",
	Nigori:                  "NIGORI",
}

func (t ModelType) String() string {
	if name, ok := modelTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsReal reports whether t names an actual syncable type (not the zero value
// and within the known range).
func (t ModelType) IsReal() bool {
	return t > Unspecified && t < modelTypeCount
}

// ModelTypeSet is a value-semantics set of model types backed by a bitmask.
// All methods return new sets; a set is never mutated in place, which makes
// it safe to hand across sequences by plain copy.
type ModelTypeSet struct {
	bits uint64
}

// NewModelTypeSet builds a set containing exactly the given types.
func NewModelTypeSet(types ...ModelType) ModelTypeSet {
	var s ModelTypeSet
	for _, t := range types {
		s.bits |= 1 << uint(t)
	}
	return s
}

// Has reports whether t is in the set.
func (s ModelTypeSet) Has(t ModelType) bool {
	return s.bits&(1<<uint(t)) != 0
}

// HasAll reports whether every member of other is also in s.
func (s ModelTypeSet) HasAll(other ModelTypeSet) bool {
	return s.bits&other.bits == other.bits
}

// Empty reports whether the set has no members.
func (s ModelTypeSet) Empty() bool {
	return s.bits == 0
}

// With returns a copy of s with the given types added.
func (s ModelTypeSet) With(types ...ModelType) ModelTypeSet {
	out := s
	for _, t := range types {
		out.bits |= 1 << uint(t)
	}
	return out
}

// Without returns a copy of s with the given types removed.
func (s ModelTypeSet) Without(types ...ModelType) ModelTypeSet {
	out := s
	for _, t := range types {
		out.bits &^= 1 << uint(t)
	}
	return out
}

// Union returns the set of types present in either s or other.
func (s ModelTypeSet) Union(other ModelTypeSet) ModelTypeSet {
	return ModelTypeSet{bits: s.bits | other.bits}
}

// Difference returns the set of types present in s but not in other.
func (s ModelTypeSet) Difference(other ModelTypeSet) ModelTypeSet {
	return ModelTypeSet{bits: s.bits &^ other.bits}
}

// Intersect returns the set of types present in both s and other.
func (s ModelTypeSet) Intersect(other ModelTypeSet) ModelTypeSet {
	return ModelTypeSet{bits: s.bits & other.bits}
}

// Types returns the members in ascending order.
func (s ModelTypeSet) Types() []ModelType {
	var out []ModelType
	for t := Unspecified + 1; t < modelTypeCount; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s ModelTypeSet) String() string {
	names := make([]string, 0, 8)
	for _, t := range s.Types() {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ", ") + "}"
}

// ControlTypes returns the types required to bootstrap sync itself before
// any user data can be downloaded.
func ControlTypes() ModelTypeSet {
	return NewModelTypeSet(Nigori)
}

// CommitOnlyTypes returns the types that only ever commit data upstream and
// therefore never need invalidation subscriptions.
func CommitOnlyTypes() ModelTypeSet {
	return NewModelTypeSet(UserEvents, SecurityEvents, SharingMessage)
}

// ProxyTypes returns the types that have no local storage of their own and
// are excluded from the enabled-type set reported to the host.
func ProxyTypes() ModelTypeSet {
	return NewModelTypeSet(ProxyTabs)
}
