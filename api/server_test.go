package api

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-g-everett/ledcolormap/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	strips, err := stream.DefaultStrips(1024)
	require.NoError(t, err)

	cfg := stream.DefaultConfig().HTTP
	cfg.CORSOrigins = []string{"http://localhost:5173"}
	a, err := NewApi(strips, cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStrips(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/strips")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []StripInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	require.Len(t, infos, 6)
	assert.Equal(t, StripInfo{Index: 1, Name: "red-green", Caption: "In 1024 steps over (255,0,0), (0,255,0)"}, infos[1])
	assert.Equal(t, "rgb-sine", infos[5].Name)
}

func TestStripColors(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/strips/1/colors?n=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var colors []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&colors))
	assert.Equal(t, []string{"#ff0000ff", "#7f7f00ff", "#00ff00ff"}, colors)
}

func TestStripColorsErrors(t *testing.T) {
	srv := newTestServer(t)
	cases := map[string]int{
		"/strips/6/colors":       http.StatusNotFound,
		"/strips/-1/colors":      http.StatusNotFound,
		"/strips/x/colors":       http.StatusNotFound,
		"/strips/0/colors?n=0":   http.StatusBadRequest,
		"/strips/0/colors?n=abc": http.StatusBadRequest,
	}
	for path, code := range cases {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, code, resp.StatusCode, path)
	}
}

func TestStripsImage(t *testing.T) {
	srv := newTestServer(t)
	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + "/strips.png?width=120&height=30")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		img, err := png.Decode(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, 120, img.Bounds().Dx())
		assert.Equal(t, 180, img.Bounds().Dy())
	}
}

func TestStripsImageBadParams(t *testing.T) {
	srv := newTestServer(t)
	for _, q := range []string{"width=0", "width=99999", "height=5", "width=abc"} {
		resp, err := http.Get(srv.URL + "/strips.png?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/strips", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
