package display

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlain_Once(t *testing.T) {
	var buf bytes.Buffer
	err := RunPlain(context.Background(), &buf, &counterScene{}, RunOptions{Once: true})
	require.NoError(t, err)
	assert.Equal(t, "n=1\n", buf.String())
}

func TestRunPlain_OncePollError(t *testing.T) {
	var buf bytes.Buffer
	err := RunPlain(context.Background(), &buf, &counterScene{pollErr: errBoom}, RunOptions{Once: true})
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, buf.String())
}

func TestRunPlain_UntilCancelled(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	s := &counterScene{}
	opts := RunOptions{Options: Options{Interval: 10 * time.Millisecond}}
	require.NoError(t, RunPlain(ctx, &buf, s, opts))

	out := buf.String()
	assert.Contains(t, out, "n=1\n\nn=2\n")
}

func TestRunPlain_Feed(t *testing.T) {
	var buf bytes.Buffer
	s := &pushScene{}
	feed := NewFeed(1)
	require.NoError(t, feed.Push(context.Background(), s.bump))

	err := RunPlain(context.Background(), &buf, s, RunOptions{
		Options: Options{Interval: time.Hour},
		Feed:    feed,
		Once:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "n=1\n", buf.String())
}

func TestRunPlain_FeedClosed(t *testing.T) {
	feed := NewFeed(0)
	close(feed)
	err := RunPlain(context.Background(), &bytes.Buffer{}, &pushScene{}, RunOptions{
		Options: Options{Interval: time.Hour},
		Feed:    feed,
	})
	assert.NoError(t, err)
}

func TestRun_NonTerminalFallsBack(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), &counterScene{}, RunOptions{Out: &buf, Once: true})
	require.NoError(t, err)
	assert.Equal(t, "n=1\n", buf.String())
}

func TestFeed_PushRespectsContext(t *testing.T) {
	feed := NewFeed(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, feed.Push(ctx, func() {}), context.Canceled)
}
