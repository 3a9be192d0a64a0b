package didomi

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/edgee-cloud/didomi-component/util/jsonutil"
)

// Payload is the decoded Didomi consent token. A nil section was absent from the token, which
// is not the same as a section that is present with nothing disabled.
type Payload struct {
	Vendors    *Section `json:"vendors,omitempty"`
	Purposes   *Section `json:"purposes,omitempty"`
	VendorsLI  *Section `json:"vendors_li,omitempty"`
	PurposesLI *Section `json:"purposes_li,omitempty"`
}

// Section is one vendor or purpose category of the token. Only the disabled list is read; its
// entries are kept opaque.
type Section struct {
	Disabled []json.RawMessage `json:"disabled"`
}

// MarshalJSON writes a nil disabled list as an empty array.
func (s Section) MarshalJSON() ([]byte, error) {
	type section Section
	out := section(s)
	if out.Disabled == nil {
		out.Disabled = []json.RawMessage{}
	}
	return jsonutil.Marshal(out)
}

const (
	vendorsField    = "vendors"
	purposesField   = "purposes"
	vendorsLIField  = "vendors_li"
	purposesLIField = "purposes_li"
	disabledField   = "disabled"
)

// UnmarshalJSON rejects a null document and repeated sections. A null section is absent.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if jsonutil.IsNull(data) {
		return errors.New("invalid type: null, expected an object")
	}
	members, err := jsonutil.ObjectMembers(data, vendorsField, purposesField, vendorsLIField, purposesLIField)
	if err != nil {
		return err
	}

	var out Payload
	targets := []struct {
		name    string
		section **Section
	}{
		{vendorsField, &out.Vendors},
		{purposesField, &out.Purposes},
		{vendorsLIField, &out.VendorsLI},
		{purposesLIField, &out.PurposesLI},
	}
	for _, target := range targets {
		raw, ok := members[target.name]
		if !ok || jsonutil.IsNull(raw) {
			continue
		}
		section := &Section{}
		if err := section.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("%s: %w", target.name, err)
		}
		*target.section = section
	}
	*p = out
	return nil
}

// UnmarshalJSON requires disabled, when present, to be a list holding valid UTF-8.
func (s *Section) UnmarshalJSON(data []byte) error {
	members, err := jsonutil.ObjectMembers(data, disabledField)
	if err != nil {
		return err
	}

	var out Section
	if raw, ok := members[disabledField]; ok {
		if jsonutil.IsNull(raw) {
			return errors.New("disabled: invalid type: null, expected a list")
		}
		if !utf8.Valid(raw) {
			return errors.New("disabled: invalid unicode")
		}
		if err := jsonutil.Unmarshal(raw, &out.Disabled); err != nil {
			return fmt.Errorf("disabled: %w", err)
		}
	}
	*s = out
	return nil
}

func (p Payload) sections() [4]*Section {
	return [4]*Section{p.Vendors, p.Purposes, p.VendorsLI, p.PurposesLI}
}

// Empty reports whether none of the four sections is present.
func (p Payload) Empty() bool {
	for _, s := range p.sections() {
		if s != nil {
			return false
		}
	}
	return true
}

// Disabled returns every disabled entry across the present sections.
func (p Payload) Disabled() []json.RawMessage {
	var disabled []json.RawMessage
	for _, s := range p.sections() {
		if s != nil {
			disabled = append(disabled, s.Disabled...)
		}
	}
	return disabled
}
