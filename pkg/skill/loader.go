package skill

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
)

// jsonParameter mirrors the JSON skill-definition parameter shape.
type jsonParameter struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// jsonSkillDefault mirrors the JSON skill-definition document: a
// SkillDataDefault with the parameter count recomputed on load rather
// than trusted from the file.
type jsonSkillDefault struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Parameters  []jsonParameter `json:"parameters"`
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSkillDirs sets the directories to search for JSON skill
// definitions.
func WithSkillDirs(dirs ...string) LoaderOption {
	return func(l *Loader) {
		l.skillDirs = dirs
	}
}

// WithSkipInvalid sets whether Discover skips files that fail to parse
// instead of aggregating them as errors.
func WithSkipInvalid(skip bool) LoaderOption {
	return func(l *Loader) {
		l.skipInvalid = skip
	}
}

// Loader loads SkillDataDefault descriptors from JSON files on disk, per
// the external-interfaces JSON skill-definition format.
type Loader struct {
	skillDirs   []string
	skipInvalid bool
}

// NewLoader creates a Loader searching "./skills" unless overridden.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{skillDirs: []string{"./skills"}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFromFile parses a single JSON skill-definition file.
func (l *Loader) LoadFromFile(path string) (skilldata.SkillDataDefault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return skilldata.SkillDataDefault{}, err
	}

	var doc jsonSkillDefault
	if err := json.Unmarshal(data, &doc); err != nil {
		return skilldata.SkillDataDefault{}, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		return skilldata.SkillDataDefault{}, fmt.Errorf("%s: missing required field: name", path)
	}

	params := make([]skilldata.Parameter, len(doc.Parameters))
	for i, p := range doc.Parameters {
		params[i] = skilldata.Parameter{Name: p.Name, Value: p.Value, Unit: p.Unit, Description: p.Description}
	}

	return skilldata.NewSkillDataDefault(doc.Name, doc.Type, doc.Description, params), nil
}

// Discover loads every *.json file across the configured directories,
// keyed by skill name.
func (l *Loader) Discover() (map[string]skilldata.SkillDataDefault, []error) {
	defs := make(map[string]skilldata.SkillDataDefault)
	var errs []error

	for _, dir := range l.skillDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			def, err := l.LoadFromFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				if l.skipInvalid {
					continue
				}
				errs = append(errs, err)
				continue
			}
			defs[def.Name] = def
		}
	}

	return defs, errs
}
