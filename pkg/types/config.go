// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Compatibility is the Illustrator file format version written by a save.
// Values follow Illustrator's internal numbering (12 = CS2, 15 = CS5, ...).
type Compatibility int

const (
	Illustrator10 Compatibility = 10
	// Illustrator12 (CS2) is the oldest version that keeps symbol names
	// longer than 31 characters intact.
	Illustrator12 Compatibility = 12
	Illustrator13 Compatibility = 13
	Illustrator14 Compatibility = 14
	Illustrator15 Compatibility = 15
	Illustrator16 Compatibility = 16
	Illustrator17 Compatibility = 17
	Illustrator24 Compatibility = 24
)

// MinSymbolCompatibility is the lowest version accepted by Validate.
const MinSymbolCompatibility = Illustrator12

// String returns the scripting enum name, e.g. "ILLUSTRATOR12".
func (c Compatibility) String() string {
	return fmt.Sprintf("ILLUSTRATOR%d", int(c))
}

// Flattening selects how transparency is flattened on save.
type Flattening string

const (
	FlattenPreserveAppearance Flattening = "preserve_appearance"
	FlattenPreservePaths      Flattening = "preserve_paths"
)

// SaveOptions holds the native save configuration applied to every output file.
type SaveOptions struct {
	// Compatibility is the target format version (default Illustrator12).
	Compatibility Compatibility `json:"compatibility" yaml:"compatibility" mapstructure:"compatibility"`

	// Compressed writes compressed output.
	Compressed bool `json:"compressed" yaml:"compressed" mapstructure:"compressed"`

	// EmbedICCProfile embeds the document color profile.
	EmbedICCProfile bool `json:"embed_icc_profile" yaml:"embed_icc_profile" mapstructure:"embed_icc_profile"`

	// EmbedLinkedFiles embeds placed linked files.
	EmbedLinkedFiles bool `json:"embed_linked_files" yaml:"embed_linked_files" mapstructure:"embed_linked_files"`

	// Flatten is the transparency flattening policy.
	Flatten Flattening `json:"flatten" yaml:"flatten" mapstructure:"flatten"`

	// FontSubsetThreshold is the glyph usage percentage below which fonts
	// are subset (default 100).
	FontSubsetThreshold int `json:"font_subset_threshold" yaml:"font_subset_threshold" mapstructure:"font_subset_threshold"`

	// PDFCompatible writes a PDF-compatible file.
	PDFCompatible bool `json:"pdf_compatible" yaml:"pdf_compatible" mapstructure:"pdf_compatible"`

	// SaveMultipleArtboards splits each artboard into its own file. It is
	// never set by the converter; multi-artboard documents are saved combined.
	SaveMultipleArtboards bool `json:"-" yaml:"-" mapstructure:"-"`
}

// DefaultSaveOptions returns the fixed configuration used for every conversion.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		Compatibility:       Illustrator12,
		Compressed:          true,
		EmbedICCProfile:     false,
		EmbedLinkedFiles:    false,
		Flatten:             FlattenPreserveAppearance,
		FontSubsetThreshold: 100,
		PDFCompatible:       true,
	}
}

// Validate reports whether the options can be handed to a host.
func (o SaveOptions) Validate() error {
	if o.Compatibility < MinSymbolCompatibility {
		return fmt.Errorf("compatibility %d is below %d; long symbol names would be truncated",
			o.Compatibility, MinSymbolCompatibility)
	}
	switch o.Flatten {
	case FlattenPreserveAppearance, FlattenPreservePaths:
	default:
		return fmt.Errorf("unknown flattening policy %q", o.Flatten)
	}
	if o.FontSubsetThreshold < 0 || o.FontSubsetThreshold > 100 {
		return fmt.Errorf("font subset threshold %d out of range 0-100", o.FontSubsetThreshold)
	}
	return nil
}

// Backend identifies the host used to open and save documents.
type Backend string

const (
	BackendAuto        Backend = "auto"
	BackendNative      Backend = "native"
	BackendIllustrator Backend = "illustrator"
)

// DefaultExtension is the native file extension, without the leading dot.
const DefaultExtension = "ai"

// Config groups everything a conversion run needs besides the two roots
// picked by the operator.
type Config struct {
	// Input is the input root. Empty means prompt.
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the output root. Empty means prompt.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Backend selects the host: auto, native, or illustrator.
	Backend Backend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Application is the scripting name of the Illustrator application
	// (default "Adobe Illustrator").
	Application string `json:"application" yaml:"application" mapstructure:"application"`

	// Extension is the native file extension (default "ai").
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// Save holds the native save options.
	Save SaveOptions `json:"save" yaml:"save" mapstructure:"save"`

	// Strict makes per-file failures fail the command.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`

	// LogDir is where the structured run log is written. Empty disables it.
	LogDir string `json:"log_dir" yaml:"log_dir" mapstructure:"log_dir"`

	// Debug raises the log level and adds source locations.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		Backend:     BackendAuto,
		Application: "Adobe Illustrator",
		Extension:   DefaultExtension,
		Save:        DefaultSaveOptions(),
	}
}
