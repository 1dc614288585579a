package repositories

import (
	"context"
	"encoding/csv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/utils"
)

// FaaDatasetRepository serves lookups from the FAA releasable database
// MASTER file, a headered CSV keyed by n-number. The file is loaded once,
// lazily, and indexed in memory; at roughly 300k rows that is cheap and
// keeps per-lookup cost flat.
type FaaDatasetRepository struct {
	path string

	once    sync.Once
	loadErr error
	byKey   map[string]models.AircraftRecord
}

func NewFaaDatasetRepository(path string) *FaaDatasetRepository {
	return &FaaDatasetRepository{path: path}
}

func (repo *FaaDatasetRepository) Lookup(ctx context.Context, key string) (models.AircraftRecord, error) {
	repo.once.Do(func() {
		repo.loadErr = repo.load(ctx)
	})
	if repo.loadErr != nil {
		return models.AircraftRecord{}, errors.Wrapf(models.ErrRegistryUnavailable,
			"FAA dataset: %v", repo.loadErr)
	}

	record, ok := repo.byKey[key]
	if !ok {
		return models.AircraftRecord{}, errors.Wrapf(models.ErrAircraftNotFound, "N%s", key)
	}

	record.LookedUpAt = time.Now()
	return record, nil
}

func (repo *FaaDatasetRepository) load(ctx context.Context) error {
	start := time.Now()

	f, err := os.Open(repo.path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return errors.Wrap(err, "could not read dataset header")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["N-NUMBER"]; !ok {
		return errors.New("dataset has no N-NUMBER column")
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	repo.byKey = make(map[string]models.AircraftRecord)

	for {
		row, err := reader.Read()
		if err != nil {
			break
		}

		key := field(row, "N-NUMBER")
		if key == "" {
			continue
		}
		// First row wins: the dataset lists the most recent registration
		// first for reissued n-numbers.
		if _, seen := repo.byKey[key]; seen {
			continue
		}

		repo.byKey[key] = models.AircraftRecord{
			NNumber:              "N" + key,
			SerialNumber:         field(row, "SERIAL NUMBER"),
			Manufacturer:         field(row, "MFR MDL CODE"),
			YearManufactured:     field(row, "YEAR MFR"),
			AircraftType:         field(row, "TYPE AIRCRAFT"),
			EngineType:           field(row, "TYPE ENGINE"),
			OwnerName:            field(row, "NAME"),
			Street:               field(row, "STREET"),
			City:                 field(row, "CITY"),
			State:                field(row, "STATE"),
			ZipCode:              field(row, "ZIP CODE"),
			Country:              field(row, "COUNTRY"),
			Status:               field(row, "STATUS CODE"),
			CertificateIssueDate: field(row, "CERT ISSUE DATE"),
			AirworthinessDate:    field(row, "AIR WORTH DATE"),
			Source:               models.SourceFaaDataset,
		}
	}

	utils.LoggerFromContext(ctx).Info("loaded FAA dataset",
		"path", repo.path,
		"records", len(repo.byKey),
		"elapsed", time.Since(start))

	return nil
}
