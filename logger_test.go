package vecmat_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat"
)

func TestLogger_SilentByDefault(t *testing.T) {
	l := vecmat.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	vecmat.SetLogger(custom)
	t.Cleanup(func() { vecmat.SetLogger(nil) })

	require.Same(t, custom, vecmat.Logger())
	vecmat.Logger().Info("hello")
	require.Contains(t, buf.String(), "msg=hello")

	vecmat.SetLogger(nil)
	require.NotNil(t, vecmat.Logger())
	require.False(t, vecmat.Logger().Enabled(context.Background(), slog.LevelError))
}
