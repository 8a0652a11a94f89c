package form

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Attachment is a file attached to a new assistant.
type Attachment struct {
	Name         string
	Size         int64
	LastModified time.Time
	Data         []byte
}

// Key identifies an attachment by name, size and modification time.
func (a Attachment) Key() string {
	return fmt.Sprintf("%s-%d-%d", a.Name, a.Size, a.LastModified.UnixMilli())
}

// ReadAttachment loads a file from disk.
func ReadAttachment(path string) (Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Attachment{}, fmt.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Attachment{
		Name:         filepath.Base(path),
		Size:         info.Size(),
		LastModified: info.ModTime(),
		Data:         data,
	}, nil
}

// Attachments is an ordered file list without duplicate keys.
type Attachments struct {
	files []Attachment
}

// Accept adds files. A file whose key matches an existing one replaces it and moves
// to the end, after the files that were already there.
func (a *Attachments) Accept(files ...Attachment) {
	if len(files) == 0 {
		return
	}
	incoming := make(map[string]bool, len(files))
	for _, f := range files {
		incoming[f.Key()] = true
	}
	next := make([]Attachment, 0, len(a.files)+len(files))
	for _, f := range a.files {
		if !incoming[f.Key()] {
			next = append(next, f)
		}
	}
	a.files = append(next, files...)
}

// Remove drops the file with key.
func (a *Attachments) Remove(key string) bool {
	for i, f := range a.files {
		if f.Key() == key {
			a.files = append(a.files[:i:i], a.files[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Attachments) Len() int { return len(a.files) }

// Files returns the attachments in order.
func (a *Attachments) Files() []Attachment {
	return append([]Attachment(nil), a.files...)
}
