package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/isaacphi/gptsmith/internal/domain"
)

// RetrievalToolID is the catalog id of the tool auto-selected when an agent gets files.
const RetrievalToolID = "retrieval"

var (
	ErrReadOnly         = errors.New("form is read-only")
	ErrSubmitInFlight   = errors.New("a save is already in progress")
	ErrInvalidName      = errors.New("invalid assistant name")
	ErrFieldHidden      = errors.New("field is not visible")
	ErrInvalidValue     = errors.New("invalid field value")
	ErrFilesNotAccepted = errors.New("bot type does not accept files")
)

// SaveFunc persists a submitted form.
type SaveFunc func(ctx context.Context, name string, tree domain.ConfigTree, files []Attachment, public bool) error

// Options configures a new Form.
type Options struct {
	// Existing is an externally supplied config. When nil the form starts from the
	// schema defaults.
	Existing domain.ConfigTree
	// View opens the form read-only, for a saved assistant.
	View   bool
	Public bool
	// AssumeFiles shows file-dependent fields without any file attached, for
	// previews of a configuration.
	AssumeFiles bool
}

// Submission is the payload handed to the save callback.
type Submission struct {
	Name   string `validate:"required,max=128"`
	Tree   domain.ConfigTree
	Files  []Attachment
	Public bool
}

var validate = validator.New()

// Form is the state behind one assistant configuration screen. It is not safe for
// concurrent use; the UI drives it from a single event loop.
type Form struct {
	schema      *Schema
	store       *Store
	tools       *ToolSelector
	files       Attachments
	public      bool
	view        bool
	inflight    bool
	assumeFiles bool

	catalog        []domain.ToolSchema
	catalogLoading bool
	catalogErr     error
}

// New builds a form over schema.
func New(schema *Schema, opts Options) (*Form, error) {
	// An external config replaces the tree wholesale; defaults only seed a new form.
	store := NewStore(opts.Existing)
	if opts.Existing == nil {
		store.Seed(schema.Defaults())
	}
	selected, err := decodeTools(store.tree[ToolsKey])
	if err != nil {
		return nil, err
	}
	f := &Form{
		schema:         schema,
		store:          store,
		tools:          NewToolSelector(selected),
		public:         opts.Public,
		view:           opts.View,
		assumeFiles:    opts.AssumeFiles,
		catalogLoading: true,
	}
	f.tools.readOnly = f.ReadOnly
	return f, nil
}

// decodeTools reads a stored tool list, which may come back from JSON as []any.
func decodeTools(v any) ([]domain.Tool, error) {
	if v == nil {
		return nil, nil
	}
	if tools, ok := v.([]domain.Tool); ok {
		return tools, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stored tools: %w", err)
	}
	var tools []domain.Tool
	if err := json.Unmarshal(raw, &tools); err != nil {
		return nil, fmt.Errorf("stored tools are not a tool list: %w", err)
	}
	for i := range tools {
		if tools[i].Config == nil {
			tools[i].Config = map[string]string{}
		}
	}
	return tools, nil
}

func (f *Form) Schema() *Schema         { return f.schema }
func (f *Form) Store() *Store           { return f.store }
func (f *Form) Tools() *ToolSelector    { return f.tools }
func (f *Form) Public() bool            { return f.public }
func (f *Form) InFlight() bool          { return f.inflight }
func (f *Form) Viewing() bool           { return f.view }
func (f *Form) Files() []Attachment     { return f.files.Files() }
func (f *Form) Tree() domain.ConfigTree { return f.store.Snapshot() }

// ReadOnly reports whether edits are rejected.
func (f *Form) ReadOnly() bool {
	return f.view || f.inflight
}

func (f *Form) hasFiles() bool {
	return f.assumeFiles || f.files.Len() > 0
}

// BotType returns the currently selected bot type.
func (f *Form) BotType() BotType {
	bt, _ := LookupBotType(f.store.tree.StringValue(TypeKey))
	return bt
}

// AcceptsFiles reports whether files can be attached right now.
func (f *Form) AcceptsFiles() bool {
	return !f.view && f.BotType().Files
}

// Fields returns the visible fields in display order.
func (f *Form) Fields() []domain.FieldDescriptor {
	return VisibleFields(f.schema, f.store.Snapshot(), f.hasFiles())
}

// SetType switches the bot type.
func (f *Form) SetType(id string) error {
	if f.ReadOnly() {
		return ErrReadOnly
	}
	tf := f.schema.TypeField()
	if !slices.Contains(tf.Options, id) {
		return fmt.Errorf("%w: unknown bot type %q", ErrInvalidValue, id)
	}
	f.store.Set(TypeKey, id)
	return nil
}

// SetField writes a value to a visible field. Choices for boolean fields may be
// given as bool or as "Yes"/"No".
func (f *Form) SetField(path string, value any) error {
	if f.ReadOnly() {
		return ErrReadOnly
	}
	if path == TypeKey {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: bot type must be a string", ErrInvalidValue)
		}
		return f.SetType(s)
	}
	field, ok := f.schema.Field(path)
	if !ok || !Visible(field, f.store.Snapshot(), f.hasFiles()) {
		return fmt.Errorf("%w: %s", ErrFieldHidden, path)
	}

	switch field.Kind {
	case domain.FieldKindBoolean:
		switch v := value.(type) {
		case bool:
			f.store.Set(path, v)
		case string:
			if v != BoolYes && v != BoolNo {
				return fmt.Errorf("%w: %s expects %s or %s", ErrInvalidValue, path, BoolYes, BoolNo)
			}
			f.store.SetChoice(field, v)
		default:
			return fmt.Errorf("%w: %s expects a boolean", ErrInvalidValue, path)
		}
	case domain.FieldKindEnum:
		s, ok := value.(string)
		if !ok || !slices.Contains(field.Options, s) {
			return fmt.Errorf("%w: %s must be one of %v", ErrInvalidValue, path, field.Options)
		}
		f.store.Set(path, s)
	case domain.FieldKindString:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s expects text", ErrInvalidValue, path)
		}
		f.store.Set(path, s)
	case domain.FieldKindTools:
		return fmt.Errorf("%w: tools are edited through the tool selector", ErrInvalidValue)
	}
	return nil
}

// SetPublic toggles public visibility.
func (f *Form) SetPublic(public bool) error {
	if f.ReadOnly() {
		return ErrReadOnly
	}
	f.public = public
	return nil
}

// SetCatalog records the loaded tool catalog. err marks a failed load.
func (f *Form) SetCatalog(tools []domain.ToolSchema, err error) {
	f.catalog = tools
	f.catalogErr = err
	f.catalogLoading = false
}

// Catalog returns the available tools and whether they are still loading.
func (f *Form) Catalog() (tools []domain.ToolSchema, loading bool, err error) {
	return f.catalog, f.catalogLoading, f.catalogErr
}

// AttachFiles adds files. For agents the retrieval tool is selected as well.
func (f *Form) AttachFiles(files ...Attachment) error {
	if f.ReadOnly() {
		return ErrReadOnly
	}
	if !f.BotType().Files {
		return fmt.Errorf("%w: %s", ErrFilesNotAccepted, f.BotType().ID)
	}
	if len(files) == 0 {
		return nil
	}
	f.files.Accept(files...)
	if f.BotType().ID == TypeAgent {
		return f.tools.Ensure(f.retrievalTool())
	}
	return nil
}

// RemoveFile detaches the file with key.
func (f *Form) RemoveFile(key string) error {
	if f.ReadOnly() {
		return ErrReadOnly
	}
	f.files.Remove(key)
	return nil
}

func (f *Form) retrievalTool() domain.Tool {
	for _, t := range f.catalog {
		if t.ID == RetrievalToolID {
			return t.NewTool()
		}
	}
	return domain.Tool{
		ID:     RetrievalToolID,
		Type:   RetrievalToolID,
		Name:   "Retrieval",
		Config: map[string]string{},
	}
}

// BeginSubmit validates the name, marks the form in flight and snapshots the payload.
// Every successful BeginSubmit must be followed by FinishSubmit.
func (f *Form) BeginSubmit(name string) (Submission, error) {
	if f.view {
		return Submission{}, ErrReadOnly
	}
	if f.inflight {
		return Submission{}, ErrSubmitInFlight
	}

	tree := f.store.Snapshot().Clone()
	tree[ToolsKey] = f.tools.Selected()
	sub := Submission{
		Name:   strings.TrimSpace(name),
		Tree:   tree,
		Files:  f.files.Files(),
		Public: f.public,
	}
	if err := validate.Struct(sub); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	f.inflight = true
	return sub, nil
}

// FinishSubmit clears the in-flight flag whatever the save outcome was.
func (f *Form) FinishSubmit(err error) error {
	f.inflight = false
	if err != nil {
		return fmt.Errorf("failed to save assistant: %w", err)
	}
	return nil
}

// Submit runs a whole save synchronously.
func (f *Form) Submit(ctx context.Context, name string, save SaveFunc) error {
	sub, err := f.BeginSubmit(name)
	if err != nil {
		return err
	}
	return f.FinishSubmit(save(ctx, sub.Name, sub.Tree, sub.Files, sub.Public))
}
