package csvsource_test

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/csvsource"
	"github.com/ericfisherdev/guestwifi/internal/application"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// memFS is an in-memory driven.FileSystem that counts reads.
type memFS struct {
	mu      sync.Mutex
	files   fstest.MapFS
	reads   int
	readErr error
}

func newMemFS() *memFS {
	return &memFS{files: fstest.MapFS{}}
}

func (m *memFS) put(name, content string, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = &fstest.MapFile{Data: []byte(content), ModTime: modTime}
}

func (m *memFS) remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, name)
}

func (m *memFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files.Stat(name)
}

func (m *memFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.files.ReadFile(name)
}

func (m *memFS) readCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

var (
	t0      = time.Date(2024, time.June, 1, 6, 0, 0, 0, time.UTC)
	june1st = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	logger  = slog.New(slog.DiscardHandler)
)

var candidates = []string{"override/passwords.csv", "public/wifi-passwords.csv", "wifi-passwords.csv"}

func newStack(fsys *memFS) (*application.RecordCache, *application.PasswordService) {
	src := csvsource.NewSource(fsys, candidates)
	cache := application.NewRecordCache(src, "csv", nil, logger)
	cal := application.NewCalendarWithClock(time.UTC, func() time.Time { return june1st })
	svc := application.NewPasswordService(cache, cal, model.WiFiNetwork{Name: "Bloom Guest"}, false, nil, logger)
	return cache, svc
}

func TestSource_ResolveHonoursPriorityOrder(t *testing.T) {
	fsys := newMemFS()
	fsys.put("wifi-passwords.csv", "Date,Password\n01/06/2024,root\n", t0)
	fsys.put("public/wifi-passwords.csv", "Date,Password\n01/06/2024,public\n", t0)
	src := csvsource.NewSource(fsys, candidates)

	info, err := src.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "public/wifi-passwords.csv", info.Identifier)
	assert.True(t, info.ModifiedAt.Equal(t0))

	fsys.put("override/passwords.csv", "Date,Password\n01/06/2024,override\n", t0)
	info, err = src.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "override/passwords.csv", info.Identifier)
}

func TestSource_ResolveSkipsDirectories(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv/readme", "not a table", t0)
	fsys.put("wifi-passwords.csv", "Date,Password\n01/06/2024,root\n", t0)
	src := csvsource.NewSource(fsys, candidates)

	info, err := src.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wifi-passwords.csv", info.Identifier)
}

func TestSource_LoadReadFailureIsConfigurationError(t *testing.T) {
	fsys := newMemFS()
	fsys.put("wifi-passwords.csv", "Date,Password\n01/06/2024,x\n", t0)
	fsys.readErr = errors.New("permission denied")
	src := csvsource.NewSource(fsys, candidates)

	_, err := src.Load(context.Background(), model.SourceInfo{Identifier: "wifi-passwords.csv"})

	assert.Equal(t, model.ErrorStateConfigurationError, model.ErrorStateOf(err))
}

func TestSource_LoadVanishedFileIsFileNotFound(t *testing.T) {
	src := csvsource.NewSource(newMemFS(), candidates)

	_, err := src.Load(context.Background(), model.SourceInfo{Identifier: "wifi-passwords.csv"})

	assert.Equal(t, model.ErrorStateFileNotFound, model.ErrorStateOf(err))
}

func TestSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := csvsource.NewSource(newMemFS(), candidates).Resolve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScenarioA_PasswordForToday(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv", "Date,Password\n01/06/2024,Secret1\n", t0)
	_, svc := newStack(fsys)

	result := svc.CurrentPassword(context.Background())

	assert.Equal(t, "Secret1", result.Password)
	assert.Empty(t, result.Error)
}

func TestScenarioB_NoRowForToday(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv", "Date,Password\n02/06/2024,Tomorrow\n", t0)
	_, svc := newStack(fsys)

	result := svc.CurrentPassword(context.Background())

	assert.False(t, result.Found())
	assert.Equal(t, model.ErrorStateNoPasswordForDate, result.ErrorState)
	assert.Contains(t, result.Error, "01/06/2024")
}

func TestScenarioC_MissingFile(t *testing.T) {
	_, svc := newStack(newMemFS())

	result := svc.CurrentPassword(context.Background())

	assert.False(t, result.Found())
	assert.Equal(t, model.ErrorStateFileNotFound, result.ErrorState)
	assert.Equal(t, "Unable to load password file. Please contact staff for assistance.", result.Error)
}

func TestScenarioD_AllDatesMalformed(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv", "Date,Password\n2024-06-01,a\n1/6/2024,b\n", t0)
	_, svc := newStack(fsys)

	result := svc.CurrentPassword(context.Background())

	assert.False(t, result.Found())
	assert.Equal(t, model.ErrorStateInvalidCSVFormat, result.ErrorState)
}

func TestScenarioE_ModifiedFileIsReparsed(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv", "Date,Password\n01/06/2024,Before\n", t0)
	_, svc := newStack(fsys)
	ctx := context.Background()

	assert.Equal(t, "Before", svc.CurrentPassword(ctx).Password)

	fsys.put("public/wifi-passwords.csv", "Date,Password\n01/06/2024,After\n", t0.Add(time.Second))

	assert.Equal(t, "After", svc.CurrentPassword(ctx).Password)
	assert.Equal(t, 2, fsys.readCount())
}

func TestCache_UnchangedFileIsReadOnce(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv", "Date,Password\n01/06/2024,Secret1\n", t0)
	cache, _ := newStack(fsys)
	ctx := context.Background()

	first, err := cache.GetRecords(ctx)
	require.NoError(t, err)
	second, err := cache.GetRecords(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fsys.readCount())
}

func TestCache_BrokenEditKeepsServingAfterRevert(t *testing.T) {
	fsys := newMemFS()
	fsys.put("public/wifi-passwords.csv", "Date,Password\n01/06/2024,Good\n", t0)
	_, svc := newStack(fsys)
	ctx := context.Background()

	require.Equal(t, "Good", svc.CurrentPassword(ctx).Password)

	fsys.put("public/wifi-passwords.csv", "Date,Pwd\n01/06/2024,Good\n", t0.Add(time.Second))
	broken := svc.CurrentPassword(ctx)
	assert.Equal(t, model.ErrorStateInvalidCSVFormat, broken.ErrorState)

	fsys.remove("public/wifi-passwords.csv")
	fsys.put("wifi-passwords.csv", "Date,Password\n01/06/2024,Fallback\n", t0)
	assert.Equal(t, "Fallback", svc.CurrentPassword(ctx).Password)
}
