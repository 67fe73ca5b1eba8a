package importer

import (
	"fmt"
	"math"
	"reflect"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/config"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Manifest declares a catalog. Entries reference each other by key.
type Manifest struct {
	Categories  []CategoryEntry   `koanf:"categories" json:"categories"`
	Genres      []GenreEntry      `koanf:"genres" json:"genres"`
	CastMembers []CastMemberEntry `koanf:"cast_members" json:"cast_members"`
	Videos      []VideoEntry      `koanf:"videos" json:"videos"`
}

// CategoryEntry declares a category
type CategoryEntry struct {
	Key         string `koanf:"key" json:"key"`
	Name        string `koanf:"name" json:"name"`
	Description string `koanf:"description" json:"description"`
}

// Validate checks the entry shape before the domain rules run
func (e CategoryEntry) Validate() error {
	return validation.ValidateStruct(&e,
		keyField(&e.Key),
	)
}

// GenreEntry declares a genre and the keys of its categories
type GenreEntry struct {
	Key        string   `koanf:"key" json:"key"`
	Name       string   `koanf:"name" json:"name"`
	Categories []string `koanf:"categories" json:"categories"`
}

// Validate checks the entry shape before the domain rules run
func (e GenreEntry) Validate() error {
	return validation.ValidateStruct(&e,
		keyField(&e.Key),
		validation.Field(&e.Categories, validation.Each(validation.Required.Error("category key cannot be blank"))),
	)
}

// CastMemberEntry declares a cast member. Type is the integer type code;
// omitting it leaves the member without a type.
type CastMemberEntry struct {
	Key  string `koanf:"key" json:"key"`
	Name string `koanf:"name" json:"name"`
	Type *int   `koanf:"type" json:"type"`
}

// Validate checks the entry shape before the domain rules run
func (e CastMemberEntry) Validate() error {
	return validation.ValidateStruct(&e,
		keyField(&e.Key),
	)
}

// FileEntry declares a file attached to a video
type FileEntry struct {
	Path string `koanf:"path" json:"path"`
	Kind string `koanf:"kind" json:"kind"`
}

// Validate checks the entry shape before the domain rules run
func (e FileEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Path, validation.Required),
		validation.Field(&e.Kind, validation.Required, validation.In(
			string(domain.VideoFileKindVideo),
			string(domain.VideoFileKindTrailer),
			string(domain.VideoFileKindBanner),
			string(domain.VideoFileKindThumbnail),
		)),
	)
}

// VideoEntry declares a video and the keys of everything it references
type VideoEntry struct {
	Key          string      `koanf:"key" json:"key"`
	Title        string      `koanf:"title" json:"title"`
	Description  string      `koanf:"description" json:"description"`
	YearLaunched *int        `koanf:"year_launched" json:"year_launched"`
	Opened       *bool       `koanf:"opened" json:"opened"`
	Rating       string      `koanf:"rating" json:"rating"`
	Duration     *float64    `koanf:"duration" json:"duration"`
	Categories   []string    `koanf:"categories" json:"categories"`
	Genres       []string    `koanf:"genres" json:"genres"`
	CastMembers  []string    `koanf:"cast_members" json:"cast_members"`
	Files        []FileEntry `koanf:"files" json:"files"`
}

// Validate checks the entry shape before the domain rules run
func (e VideoEntry) Validate() error {
	return validation.ValidateStruct(&e,
		keyField(&e.Key),
		validation.Field(&e.YearLaunched, validation.NotNil.Error("is marked non-null but is null")),
		validation.Field(&e.Categories, validation.Each(validation.Required.Error("category key cannot be blank"))),
		validation.Field(&e.Genres, validation.Each(validation.Required.Error("genre key cannot be blank"))),
		validation.Field(&e.CastMembers, validation.Each(validation.Required.Error("cast member key cannot be blank"))),
		validation.Field(&e.Files),
	)
}

func keyField(key *string) *validation.FieldRules {
	return validation.Field(key,
		validation.Required.Error("key is required"),
		validation.Match(keyPattern).Error("key must be lowercase letters, digits, '.', '_' or '-'"),
	)
}

// LoadManifest reads a YAML or JSON manifest, chosen by file extension.
func LoadManifest(path string) (*Manifest, error) {
	parser, err := config.ParserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}

	var m Manifest
	if err := k.UnmarshalWithConf("", &m, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       integralNumberHook,
			Result:           &m,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	return &m, nil
}

// integralNumberHook refuses to decode a fractional or non-finite number
// into an integer field. mapstructure would otherwise truncate 1.9 to 1.
func integralNumberHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", data)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is out of integer range", data)
	}
	return data, nil
}
