// ABOUTME: In-memory blob store for tests
// ABOUTME: Supports scripted load and save failures

package storage

// MemBlob is an in-memory Blob for tests. FailSave and FailLoad, when set,
// are returned from the respective call.
type MemBlob struct {
	Raw      string
	Present  bool
	Saves    int
	FailSave error
	FailLoad error
}

func (m *MemBlob) Load() (string, bool, error) {
	if m.FailLoad != nil {
		return "", false, m.FailLoad
	}
	return m.Raw, m.Present, nil
}

func (m *MemBlob) Save(raw string) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	m.Raw = raw
	m.Present = true
	m.Saves++
	return nil
}

func (m *MemBlob) Delete() error {
	m.Raw = ""
	m.Present = false
	return nil
}

func (m *MemBlob) Close() error { return nil }
