package ledger

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// OpenSaveData opens the per-user save-data location for appName and loads
// the ledger stored there.
func OpenSaveData(appName string) (*Ledger, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return Open(saveData{m: m})
}

// saveData adapts a gdata manager to Store. A first run has no item yet,
// which loads as empty.
type saveData struct {
	m *gdata.Manager
}

func (s saveData) LoadItem(itemKey string) ([]byte, error) {
	if !s.m.ItemExists(itemKey) {
		return nil, nil
	}
	return s.m.LoadItem(itemKey)
}

func (s saveData) SaveItem(itemKey string, data []byte) error {
	return s.m.SaveItem(itemKey, data)
}
