package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStorage is an in-memory Storage with failure injection.
type fakeStorage struct {
	objects     map[string][]byte
	failSave    bool
	failDelete  bool
	deleteCalls []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Save(bucket, path string, file io.Reader) error {
	if f.failSave {
		return fmt.Errorf("save failed")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	f.objects[bucket+"/"+path] = data
	return nil
}

func (f *fakeStorage) Delete(bucket, path string) error {
	f.deleteCalls = append(f.deleteCalls, bucket+"/"+path)
	if f.failDelete {
		return fmt.Errorf("delete failed")
	}
	delete(f.objects, bucket+"/"+path)
	return nil
}

func (f *fakeStorage) DeleteMany(bucket string, paths []string) error {
	var lastErr error
	for _, path := range paths {
		err := f.Delete(bucket, path)
		if err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (f *fakeStorage) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

func (f *fakeStorage) PathFromURL(url string) (string, string, bool) {
	rest, found := strings.CutPrefix(url, "https://cdn.test/")
	if !found {
		return "", "", false
	}
	bucket, path, found := strings.Cut(rest, "/")
	if !found {
		return "", "", false
	}
	return bucket, path, true
}

// fileHeader builds a real multipart.FileHeader whose Open works, by
// round-tripping through a multipart form.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}
