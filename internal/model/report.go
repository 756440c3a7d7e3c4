package model

import (
	"strconv"
	"time"
)

// Stage names one of the pipeline stages.
type Stage string

// Pipeline stages in execution order.
const (
	StageSources  Stage = "sources"
	StageMetadata Stage = "metadata"
	StageElements Stage = "elements"
)

// StageBuild installs the packages into the image. It has no result file.
const StageBuild Stage = "build"

// Stages lists every stage with a result file, in order.
var Stages = []Stage{StageSources, StageMetadata, StageElements}

// SourceRecord is one line of the sources result file.
type SourceRecord struct {
	Library Library `json:"library"`
	Source  Source  `json:"source"`
}

// MetadataRecord is one line of the metadata result file.
type MetadataRecord struct {
	Library      Library      `json:"library"`
	Source       Source       `json:"source"`
	LoadPath     LoadPath     `json:"loadpath"`
	Dependencies []Dependency `json:"dependencies"`
	Theorems     []Element    `json:"theorems"`
}

// ElementRecord is one line of the elements result file.
type ElementRecord struct {
	Library Library `json:"library"`
	Theorem Element `json:"theorem"`
	Steps   []Step  `json:"steps"`
}

// SourceIdentity identifies a source record by its path.
func SourceIdentity(r SourceRecord) string {
	return string(r.Source.Path)
}

// MetadataIdentity identifies a metadata record by its source path.
func MetadataIdentity(r MetadataRecord) string {
	return string(r.Source.Path)
}

// TheoremIdentity identifies a theorem by its statement and start line.
func TheoremIdentity(e Element) string {
	return e.Statement + "\x00" + strconv.Itoa(e.Range.Start.Line)
}

// ElementIdentity identifies an element record by its theorem.
func ElementIdentity(r ElementRecord) string {
	return TheoremIdentity(r.Theorem)
}

// StageSummary counts what one stage did for one package.
type StageSummary struct {
	Package    string
	Stage      Stage
	Skipped    int
	Appended   int
	Warnings   int
	Recoveries int
	Elapsed    time.Duration
}

// StatusRow describes the result file of one stage of one package.
type StatusRow struct {
	Package string
	Stage   Stage
	Path    Path
	Records int
	Bytes   int64
	Err     error
}
