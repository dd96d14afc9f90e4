package character

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
)

// csvRepository stores one character per row in a flat CSV file. History,
// source-breakdown, and snapshot fields are embedded as JSON sub-fields.
// Writes are read-filter-rewrite over the whole file, not transactional.
type csvRepository struct {
	path string
	mu   sync.Mutex
}

// CSVConfig contains configuration for the CSV character repository.
type CSVConfig struct {
	Path string
}

// Validate validates the CSVConfig.
func (cfg *CSVConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// NewCSV creates a CSV-file-backed character repository
func NewCSV(cfg *CSVConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &csvRepository{path: cfg.Path}, nil
}

func csvHeader() []string {
	header := []string{
		"id", "name", "type",
		"class", "class_level", "profession", "profession_level",
		"race", "race_level", "race_rank",
		"tier_thresholds", "class_history", "profession_history", "race_history",
	}
	for _, stat := range character.Stats() {
		header = append(header, "stat_"+string(stat))
	}
	for _, stat := range character.Stats() {
		header = append(header, "mod_"+string(stat))
	}
	header = append(header,
		"source_breakdown", "free_points",
		"manual", "manual_base_stats", "manual_current_stats",
		"validation_status", "creation_record", "blessing",
		"max_health", "current_health",
	)
	return header
}

func (r *csvRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.CharacterData == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.CharacterData.Name == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Name == input.CharacterData.Name {
			return nil, errors.AlreadyExistsf("character %q already exists", input.CharacterData.Name)
		}
	}

	rows = append(rows, input.CharacterData)
	if err := r.writeAll(rows); err != nil {
		return nil, err
	}
	return &CreateOutput{CharacterData: input.CharacterData}, nil
}

func (r *csvRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Name == input.Name {
			return &GetOutput{CharacterData: row}, nil
		}
	}
	return nil, errors.NotFoundf("character %q not found", input.Name)
}

func (r *csvRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterData == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.CharacterData.Name == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i, row := range rows {
		if row.Name == input.CharacterData.Name {
			rows[i] = input.CharacterData
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFoundf("character %q not found", input.CharacterData.Name)
	}

	if err := r.writeAll(rows); err != nil {
		return nil, err
	}
	return &UpdateOutput{CharacterData: input.CharacterData}, nil
}

func (r *csvRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	kept := rows[:0]
	found := false
	for _, row := range rows {
		if row.Name == input.Name {
			found = true
			continue
		}
		kept = append(kept, row)
	}
	if !found {
		return nil, errors.NotFoundf("character %q not found", input.Name)
	}

	if err := r.writeAll(kept); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (r *csvRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Characters: rows}, nil
}

// readAll loads every row. A missing file is an empty store; a row that
// cannot be decoded is skipped with a warning so one bad row never sinks
// the batch.
func (r *csvRepository) readAll(ctx context.Context) ([]*character.Data, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to open %s", r.path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.path)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	var rows []*character.Data
	for n, record := range records[1:] {
		data, err := decodeRow(ctx, index, record)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable row",
				"file", r.path,
				"row", n+2,
				"error", err.Error())
			continue
		}
		rows = append(rows, data)
	}
	return rows, nil
}

func (r *csvRepository) writeAll(rows []*character.Data) error {
	f, err := os.Create(r.path)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", r.path)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader()); err != nil {
		return errors.Wrapf(err, "failed to write header")
	}
	for _, row := range rows {
		record, err := encodeRow(row)
		if err != nil {
			return err
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write row for %q", row.Name)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "failed to flush %s", r.path)
	}
	return nil
}

func encodeRow(d *character.Data) ([]string, error) {
	record := []string{
		d.ID, d.Name, d.Type,
		d.Class, strconv.Itoa(d.ClassLevel), d.Profession, strconv.Itoa(d.ProfessionLevel),
		d.Race, strconv.Itoa(d.RaceLevel), d.RaceRank,
	}

	for _, field := range []any{d.TierThresholds, d.ClassHistory, d.ProfessionHistory, d.RaceHistory} {
		encoded, err := json.Marshal(field)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal sub-field for %q", d.Name)
		}
		record = append(record, string(encoded))
	}

	for _, stat := range character.Stats() {
		record = append(record, strconv.Itoa(d.CurrentStats[stat]))
	}
	for _, stat := range character.Stats() {
		record = append(record, strconv.Itoa(d.Modifiers[stat]))
	}

	for _, field := range []any{d.SourceBreakdown} {
		encoded, err := json.Marshal(field)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal sub-field for %q", d.Name)
		}
		record = append(record, string(encoded))
	}

	record = append(record, strconv.Itoa(d.FreePoints), strconv.FormatBool(d.Manual))

	for _, field := range []any{d.ManualBase, d.ManualCurrent} {
		encoded, err := json.Marshal(field)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal sub-field for %q", d.Name)
		}
		record = append(record, string(encoded))
	}

	record = append(record, d.Status)

	for _, field := range []any{d.Creation, d.Blessing} {
		encoded, err := json.Marshal(field)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal sub-field for %q", d.Name)
		}
		record = append(record, string(encoded))
	}

	record = append(record, strconv.Itoa(d.MaxHealth), strconv.Itoa(d.CurrentHealth))
	return record, nil
}

func decodeRow(ctx context.Context, index map[string]int, record []string) (*character.Data, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	getInt := func(col string) int {
		v, err := strconv.Atoi(get(col))
		if err != nil {
			return 0
		}
		return v
	}
	// A corrupt JSON sub-field falls back to the zero value with a
	// warning instead of aborting the load
	getJSON := func(col string, target any) {
		raw := get(col)
		if raw == "" || raw == "null" {
			return
		}
		if err := json.Unmarshal([]byte(raw), target); err != nil {
			slog.WarnContext(ctx, "corrupt sub-field, using default",
				"column", col,
				"error", err.Error())
		}
	}

	name := get("name")
	if name == "" {
		return nil, fmt.Errorf("row has no name")
	}

	d := &character.Data{
		ID:              get("id"),
		Name:            name,
		Type:            get("type"),
		Class:           get("class"),
		ClassLevel:      getInt("class_level"),
		Profession:      get("profession"),
		ProfessionLevel: getInt("profession_level"),
		Race:            get("race"),
		RaceLevel:       getInt("race_level"),
		RaceRank:        get("race_rank"),
		FreePoints:      getInt("free_points"),
		Manual:          get("manual") == "true",
		Status:          get("validation_status"),
		MaxHealth:       getInt("max_health"),
		CurrentHealth:   getInt("current_health"),
		CurrentStats:    make(map[character.Stat]int, len(character.Stats())),
		Modifiers:       make(map[character.Stat]int, len(character.Stats())),
	}

	getJSON("tier_thresholds", &d.TierThresholds)
	getJSON("class_history", &d.ClassHistory)
	getJSON("profession_history", &d.ProfessionHistory)
	getJSON("race_history", &d.RaceHistory)
	getJSON("source_breakdown", &d.SourceBreakdown)
	getJSON("manual_base_stats", &d.ManualBase)
	getJSON("manual_current_stats", &d.ManualCurrent)
	getJSON("creation_record", &d.Creation)
	getJSON("blessing", &d.Blessing)

	for _, stat := range character.Stats() {
		d.CurrentStats[stat] = getInt("stat_" + string(stat))
		d.Modifiers[stat] = getInt("mod_" + string(stat))
	}

	return d, nil
}
