package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"countrycodes-generator/internal/cache"
	"countrycodes-generator/internal/config"
	"countrycodes-generator/internal/fetch"
)

const (
	countryCSV = "Country Name,ISO2,ISO3,Top Level Domain,FIPS,ISO Numeric,GeoNameID,E164," +
		"Phone Code,Continent,Capital,Time Zone in Capital,Currency,Language Codes,Languages," +
		"Area KM2,Internet Hosts,Internet Users,Phones (Mobile),Phones (Landline),GDP\n" +
		`Chile,CL,CHL,cl,CI,152,3895114,56,56,South America,Santiago,America/Santiago,` +
		`Peso,"es, rap",Spanish,756950,2152000,7009000,24130000,3276000,281700000000` + "\n" +
		`France,FR,FRA,fr,FR,250,3017382,33,34,Europe,Paris,Europe/Paris,` +
		`Euro,fr-FR,French,547030,,,,,` + "\n"

	subHeader = "Phone Code,Description\n"
)

// countrycodeServer mimics the countrycode.org export endpoints.
func countrycodeServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var requests atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/downloadCountryCodes", func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(countryCSV))
	})
	mux.HandleFunc("/downloadCityCodes", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		body := subHeader
		if r.URL.Query().Get("country") == "CL" {
			body += "56 2,Santiago\n56 32,\n"
		}

		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("/downloadNationalCodes", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		body := subHeader
		if r.URL.Query().Get("country") == "FR" {
			// Latin-1 'é'
			body += "33 6,T\xe9l\xe9phone mobile\n"
		}

		_, _ = w.Write([]byte(body))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, &requests
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	dir := t.TempDir()

	cfg := config.Default()
	cfg.BaseURL = baseURL
	cfg.SourceDir = filepath.Join(dir, "src", "countrycode.org")
	cfg.LibraryDir = filepath.Join(dir, "lib", "countrycodes")

	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestPipeline_Run(t *testing.T) {
	srv, requests := countrycodeServer(t)
	cfg := testConfig(t, srv.URL)

	core, logs := observer.New(zapcore.DebugLevel)

	p, err := FromConfig(cfg, srv.Client(), zap.New(core))
	require.NoError(t, err)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Summary{Countries: 2, Modules: 3, Warnings: 2}, summary)
	assert.EqualValues(t, 5, requests.Load())

	lib := cfg.LibraryDir
	for _, name := range []string{
		"countrycodes.json", "countrycodes.d.ts", "countrycodes.js",
		"countrycodes-CL.json", "countrycodes-CL.d.ts", "countrycodes-CL.js",
		"countrycodes-FR.json", "countrycodes-FR.d.ts", "countrycodes-FR.js",
	} {
		assert.FileExists(t, filepath.Join(lib, name))
	}

	for _, name := range []string{"countrycodes.csv", "citycodes-CL.csv", "nationalcodes-FR.csv", "countrycodes.json"} {
		assert.FileExists(t, filepath.Join(cfg.SourceDir, name))
	}

	cl := readFile(t, filepath.Join(lib, "countrycodes-CL.js"))
	assert.True(t, strings.HasPrefix(cl, "const countrycodesCL = {\n"))
	assert.True(t, strings.HasSuffix(cl, "};\n\nexports.countrycodesCL = countrycodesCL;\n"))
	assert.Contains(t, cl, "    /** @type {[\"es\" | \"rap\"]} */\n    \"LanguageCodes\": [\n")
	assert.Contains(t, cl, "    \"CityCodes\": [\n        {\n")
	assert.Contains(t, cl, "    /** @type {[]} */\n    \"NationalCodes\": [],\n")

	fr := readFile(t, filepath.Join(lib, "countrycodes-FR.d.ts"))
	assert.True(t, strings.HasPrefix(fr, "export declare const countrycodesFR: {\n"))
	assert.Contains(t, fr, "\"Description\": \"Téléphone mobile\",")
	assert.Contains(t, fr, "\"InternetHosts\": null,")

	aggregate := readFile(t, filepath.Join(lib, "countrycodes.json"))
	assert.True(t, strings.HasPrefix(aggregate, "[\n  {\n    \"CountryName\": \"Chile\",\n"))
	assert.False(t, strings.HasSuffix(aggregate, "\n"))

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	codes := make([]string, 0, len(warnings))
	for _, e := range warnings {
		codes = append(codes, e.ContextMap()["country"].(string)+":"+e.ContextMap()["code"].(string))
	}

	assert.ElementsMatch(t, []string{"FR:PHONE_CODE_MISMATCH", "CL:EMPTY_DESCRIPTION"}, codes)
}

func TestPipeline_Run_SecondRunUsesCache(t *testing.T) {
	srv, requests := countrycodeServer(t)
	cfg := testConfig(t, srv.URL)

	p, err := FromConfig(cfg, srv.Client(), nil)
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	first := readFile(t, filepath.Join(cfg.LibraryDir, "countrycodes.js"))

	srv.Close()

	p, err = FromConfig(cfg, srv.Client(), nil)
	require.NoError(t, err)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Countries)
	assert.EqualValues(t, 5, requests.Load())
	assert.Equal(t, first, readFile(t, filepath.Join(cfg.LibraryDir, "countrycodes.js")))
}

func TestPipeline_Run_Workers(t *testing.T) {
	srv, _ := countrycodeServer(t)

	sequential := testConfig(t, srv.URL)
	concurrent := testConfig(t, srv.URL)
	concurrent.Workers = 4

	for _, cfg := range []*config.Config{sequential, concurrent} {
		p, err := FromConfig(cfg, srv.Client(), nil)
		require.NoError(t, err)

		_, err = p.Run(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t,
		readFile(t, filepath.Join(sequential.LibraryDir, "countrycodes.js")),
		readFile(t, filepath.Join(concurrent.LibraryDir, "countrycodes.js")))
}

func TestPipeline_Run_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	cfg := testConfig(t, srv.URL)

	p, err := FromConfig(cfg, srv.Client(), nil)
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.ErrorIs(t, err, fetch.ErrNetwork)
	assert.NoDirExists(t, cfg.LibraryDir)
	assert.NoFileExists(t, filepath.Join(cfg.SourceDir, "countrycodes.csv"))
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(config.CacheConfig{Backend: config.BackendFile})
	require.NoError(t, err)
	assert.IsType(t, &cache.FileStore{}, store)

	store, err = NewStore(config.CacheConfig{Backend: config.BackendFile, MemoSize: 8})
	require.NoError(t, err)
	assert.IsType(t, &cache.Memo{}, store)

	_, err = NewStore(config.CacheConfig{Backend: config.BackendS3})
	require.Error(t, err)

	_, err = NewStore(config.CacheConfig{Backend: "redis"})
	require.Error(t, err)
}

func TestNewStore_S3(t *testing.T) {
	store, err := NewStore(config.CacheConfig{
		Backend: config.BackendS3,
		S3: config.S3Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
			Bucket:    "countrycodes",
		},
	})
	require.NoError(t, err)
	assert.IsType(t, &cache.S3Store{}, store)
}
