package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, displayWidth("state"))
	assert.Equal(t, 4, displayWidth("状態"))
	assert.Equal(t, 22, displayWidth("初動メール自動送信（5分間隔）")-displayWidth("5分間隔"))
}

func TestRenderAlignsMixedWidthColumns(t *testing.T) {
	table := NewTable("タスク名", "状態", "説明")
	table.AddRow("auto-reply-mail", "active", "初動メール自動送信（10分間隔）")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// Column widths: name 15 (auto-reply-mail), state 6 (active),
	// description 30 (初動メール自動送信（10分間隔） in display cells).
	expectedSep := strings.Repeat("-", 15) + "  " + strings.Repeat("-", 6) + "  " + strings.Repeat("-", 30)
	assert.Equal(t, expectedSep, lines[1])

	assert.True(t, strings.HasPrefix(lines[2], "auto-reply-mail  active  "), "columns aligned: %q", lines[2])
	assert.Contains(t, lines[2], "10分間隔")
}

func TestRenderSeparatorMatchesColumnWidth(t *testing.T) {
	table := NewTable("名前")
	table.AddRow("auto-reply-mail")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", displayWidth("auto-reply-mail")), lines[1])
}

func TestRenderShortRow(t *testing.T) {
	table := NewTable("a", "b")
	table.AddRow("only-one")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Contains(t, buf.String(), "only-one")
}
