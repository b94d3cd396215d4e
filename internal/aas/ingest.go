package aas

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/prodflow/shopfloor-routing/internal/geocode"
	"github.com/prodflow/shopfloor-routing/internal/store"
)

// UploadDirectory stores every valid AAS JSON file found in dir, replacing
// the previous content of the store. A document is valid when it carries at
// least one asset administration shell and one submodel; invalid or
// unreadable files are logged and skipped. Returns the number of stored
// documents. Document names are the file names without extension.
func UploadDirectory(st *store.Store, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("aas: read upload directory: %w", err)
	}

	if err := st.Reset(); err != nil {
		return 0, err
	}

	inserted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}
		doc, err := DecodeDocument(bytes.NewReader(raw))
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}
		if err := doc.Validate(); err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := st.Put(name, raw); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// LoadMachines reads every stored document and builds the running machine
// records. Documents without an address, process category or resolvable
// coordinate are logged and skipped; machines that are not running are
// dropped silently, they are valid documents that just don't participate.
// The result is ordered by document name (the store iterates in key order).
func LoadMachines(ctx context.Context, st *store.Store, classifier Classifier, geocoder geocode.Geocoder) ([]Machine, error) {
	machines := make([]Machine, 0)
	err := st.ForEach(func(name string, raw []byte) error {
		doc, err := DecodeDocument(bytes.NewReader(raw))
		if err != nil {
			log.Printf("skipping %s: %v", name, err)
			return nil
		}
		if err := doc.Validate(); err != nil {
			log.Printf("skipping %s: %v", name, err)
			return nil
		}

		machine, err := classifier.Machine(ctx, name, doc, geocoder)
		if err != nil {
			if errors.Is(err, ErrNoAddress) || errors.Is(err, ErrNoProcess) || errors.Is(err, geocode.ErrNotFound) {
				log.Printf("skipping %s: %v", name, err)
				return nil
			}
			return err
		}
		if !machine.Running() {
			return nil
		}
		machines = append(machines, *machine)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return machines, nil
}
