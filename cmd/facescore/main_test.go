package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"facescore/internal/analysis"
	"facescore/internal/cohort"
	"facescore/internal/landmark/landmarktest"
	"facescore/internal/version"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("FACESCORE_CONFIG", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
}

func writeRequest(t *testing.T, dir string) string {
	t.Helper()
	req := analysis.Request{
		Front: analysis.Photo{
			Landmarks: landmarktest.Front(),
			Matrix:    landmarktest.RotationMatrix(0, 0, 0),
		},
		Side: &analysis.Photo{
			Landmarks: landmarktest.Side(),
			Matrix:    landmarktest.RotationMatrixColumnMajor(74, 6, 12),
			Width:     1080,
			Height:    1440,
		},
		Cohort: cohort.Key{Ethnicity: "south_asian", Gender: "male", AgeBand: "30_plus"},
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	path := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 480, 640))
	for y := 0; y < 640; y++ {
		for x := 0; x < 480; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "front.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRunWritesReport(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "report.json")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-env=",
		"-request", writeRequest(t, dir),
		"-front-image", writePNG(t, dir),
		"-out", out,
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var rep analysis.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	require.NotEmpty(t, rep.ID)
	require.False(t, rep.Score.Fallback)
	require.Equal(t, "south_asian", rep.Score.Cohort.Ethnicity)
	require.True(t, rep.Front.Quality.Quality.BlurChecked)
	require.NotNil(t, rep.Side)
	require.True(t, rep.Side.Pose.ValidSide)
}

func TestRunToStdout(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env=", "-request", writeRequest(t, dir)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), `"overallScore"`)
	require.Contains(t, stdout.String(), `"metricDiagnostics"`)
}

func TestRunFlagsAndErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	require.Equal(t, version.String()+"\n", stdout.String())

	stdout.Reset()
	require.Equal(t, 0, run([]string{"-env=", "-print-config"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "scoring:")

	require.Equal(t, 2, run([]string{"-env="}, &stdout, &stderr))

	for _, iv := range []string{"0", "-1s"} {
		stderr.Reset()
		require.Equal(t, 2, run([]string{"-env=", "-watch", "-interval", iv, "-request", writeRequest(t, dir)}, &stdout, &stderr))
		require.Contains(t, stderr.String(), "-interval")
	}
	require.Equal(t, 1, run([]string{"-env=", "-request", filepath.Join(dir, "missing.json")}, &stdout, &stderr))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	require.Equal(t, 1, run([]string{"-env=", "-request", bad}, &stdout, &stderr))

	t.Setenv("LOG_FORMAT", "xml")
	require.Equal(t, 1, run([]string{"-env=", "-request", bad}, &stdout, &stderr))
}
