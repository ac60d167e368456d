// Package template stores reusable job-requirement templates as JSON files
// on disk.
package template

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-optimizer/internal/types"
)

//go:embed schema.json
var templateSchema string

// summaryDescriptionRunes is where the list view truncates descriptions.
const summaryDescriptionRunes = 100

// Info is the summary row shown when listing templates.
type Info struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Company           string `json:"company"`
	Description       string `json:"description"`
	SkillsCount       int    `json:"skills_count"`
	RequirementsCount int    `json:"requirements_count"`
}

// NotFoundError indicates the requested template does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.ID)
}

// InvalidTemplateError indicates template content that fails schema or
// struct validation.
type InvalidTemplateError struct {
	ID      string
	Message string
	Cause   error
}

func (e *InvalidTemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid template %s: %s: %v", e.ID, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid template %s: %s", e.ID, e.Message)
}

func (e *InvalidTemplateError) Unwrap() error {
	return e.Cause
}

// Store keeps each template as <id>.json under a directory.
type Store struct {
	dir      string
	validate *validator.Validate
}

// NewStore opens (creating if needed) a template directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating template directory: %w", err)
	}
	return &Store{dir: dir, validate: validator.New()}, nil
}

// List returns summary info for every readable template, sorted by ID.
// Unreadable or malformed files are skipped rather than failing the list.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory: %w", err)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		job, err := s.Get(id)
		if err != nil {
			continue
		}
		infos = append(infos, summarize(id, job))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Get loads one template by ID.
func (s *Store) Get(id string) (types.JobRequirement, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return types.JobRequirement{}, &NotFoundError{ID: id}
		}
		return types.JobRequirement{}, fmt.Errorf("reading template %s: %w", id, err)
	}

	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return types.JobRequirement{}, &InvalidTemplateError{ID: id, Message: "decoding JSON", Cause: err}
	}
	return job, nil
}

// Create writes a new template. It fails if the ID is already taken or the
// template does not satisfy the schema.
func (s *Store) Create(id string, job types.JobRequirement) error {
	if _, err := os.Stat(s.path(id)); err == nil {
		return fmt.Errorf("template already exists: %s", id)
	}
	return s.write(id, job)
}

// Update overwrites an existing template.
func (s *Store) Update(id string, job types.JobRequirement) error {
	if _, err := os.Stat(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{ID: id}
		}
		return fmt.Errorf("checking template %s: %w", id, err)
	}
	return s.write(id, job)
}

// Delete removes a template by ID.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return &NotFoundError{ID: id}
	}
	return err
}

// Search returns templates whose title, company, or summary description
// contains the keyword, case-insensitively.
func (s *Store) Search(keyword string) ([]Info, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	matched := make([]Info, 0, len(all))
	for _, info := range all {
		if strings.Contains(strings.ToLower(info.Title), needle) ||
			strings.Contains(strings.ToLower(info.Company), needle) ||
			strings.Contains(strings.ToLower(info.Description), needle) {
			matched = append(matched, info)
		}
	}
	return matched, nil
}

// categoryRules maps each category to the title keywords that select it.
// Evaluation order matters: the first matching category wins.
var categoryRules = []struct {
	name     string
	keywords []string
}{
	{"技术类", []string{"工程师", "开发", "程序员", "技术"}},
	{"数据类", []string{"数据", "分析师", "算法"}},
	{"管理类", []string{"经理", "主管", "总监", "管理"}},
	{"设计类", []string{"设计师", "ui", "ux", "美工"}},
}

const fallbackCategory = "其他"

// Categories groups template IDs by job-title keywords. Every category key
// is present in the result even when empty.
func (s *Store) Categories() (map[string][]string, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	categories := map[string][]string{fallbackCategory: {}}
	for _, rule := range categoryRules {
		categories[rule.name] = []string{}
	}

	for _, info := range all {
		title := strings.ToLower(info.Title)
		name := fallbackCategory
		for _, rule := range categoryRules {
			if containsAny(title, rule.keywords) {
				name = rule.name
				break
			}
		}
		categories[name] = append(categories[name], info.ID)
	}
	return categories, nil
}

func (s *Store) write(id string, job types.JobRequirement) error {
	if err := s.validate.Struct(job); err != nil {
		return &InvalidTemplateError{ID: id, Message: "missing required fields", Cause: err}
	}

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template %s: %w", id, err)
	}

	if err := validateSchema(id, string(data)); err != nil {
		return err
	}

	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return fmt.Errorf("writing template %s: %w", id, err)
	}
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func validateSchema(id, content string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(templateSchema),
		gojsonschema.NewStringLoader(content),
	)
	if err != nil {
		return &InvalidTemplateError{ID: id, Message: "running schema validation", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", desc.Field(), desc.Description())
	}
	return &InvalidTemplateError{ID: id, Message: b.String()}
}

func summarize(id string, job types.JobRequirement) Info {
	description := job.Description
	if utf8.RuneCountInString(description) > summaryDescriptionRunes {
		runes := []rune(description)
		description = string(runes[:summaryDescriptionRunes]) + "..."
	}
	return Info{
		ID:                id,
		Title:             job.Title,
		Company:           job.Company,
		Description:       description,
		SkillsCount:       len(job.KeySkills),
		RequirementsCount: len(job.Requirements),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
