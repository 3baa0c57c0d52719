package resume

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed bundle.schema.json
var bundleSchema string

// Bundle is the serialized shape stored in the saved_resumes JSONB column:
// the resume data plus the section order, in one blob. The template id and
// title live in their own indexed columns.
type Bundle struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	SectionOrder SectionOrder `json:"sectionOrder"`
}

// NewBundle packs a document's data and order for persistence.
func NewBundle(data ResumeData, order SectionOrder) Bundle {
	return Bundle{
		PersonalInfo: data.PersonalInfo,
		Experience:   data.Experience,
		Education:    data.Education,
		Skills:       data.Skills,
		SectionOrder: order,
	}
}

// Data reassembles the ResumeData half of the bundle.
func (b Bundle) Data() ResumeData {
	return ResumeData{
		PersonalInfo: b.PersonalInfo,
		Experience:   b.Experience,
		Education:    b.Education,
		Skills:       b.Skills,
	}
}

// Validate checks the bundle against the JSON schema and verifies the
// section order is a real permutation. A missing sectionOrder is tolerated
// for bundles saved before ordering existed; it falls back to the default.
func (b *Bundle) Validate() error {
	if len(b.SectionOrder) == 0 {
		b.SectionOrder = DefaultSectionOrder()
	}
	if err := b.SectionOrder.Validate(); err != nil {
		return fmt.Errorf("invalid section order: %w", err)
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(bundleSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !res.Valid() {
		var msgs []string
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("bundle schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// Marshal serializes the bundle after validating it.
func (b Bundle) Marshal() (json.RawMessage, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bundle: %w", err)
	}
	return raw, nil
}

// UnmarshalBundle parses and validates a stored bundle blob. Entries keep
// their stored ids so references made before the save stay valid.
func UnmarshalBundle(raw json.RawMessage) (Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return Bundle{}, fmt.Errorf("failed to unmarshal bundle: %w", err)
	}
	if b.Experience == nil {
		b.Experience = []Experience{}
	}
	if b.Education == nil {
		b.Education = []Education{}
	}
	if b.Skills == nil {
		b.Skills = []string{}
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}
