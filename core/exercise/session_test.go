package exercise

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, *MockPrompter, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	in := NewMockPrompter(ctrl)
	out := &bytes.Buffer{}
	return &Session{In: in, Out: out}, in, out
}

func TestRunFactorial(t *testing.T) {
	s, in, out := newSession(t)
	in.EXPECT().ReadLine("Enter a number: ").Return("5", nil)

	require.NoError(t, Run(context.Background(), "factorial", s))
	require.Equal(t, "The factorial of 5 is 120\n", out.String())
}

func TestRunPrice(t *testing.T) {
	s, in, out := newSession(t)
	gomock.InOrder(
		in.EXPECT().ReadLine("Enter the price: ").Return("50", nil),
		in.EXPECT().ReadLine("Enter the sales: ").Return("800", nil),
	)

	require.NoError(t, Run(context.Background(), "price", s))
	require.Equal(t, "The new price is 57.500000\n", out.String())
}

func TestRunRetriesMalformedInput(t *testing.T) {
	s, in, out := newSession(t)
	gomock.InOrder(
		in.EXPECT().ReadLine("Enter a number: ").Return("five", nil),
		in.EXPECT().ReadLine("Enter a number: ").Return(" 3 ", nil),
	)

	require.NoError(t, Run(context.Background(), "verify", s))
	require.Contains(t, out.String(), `"five" is not an integer`)
	require.Contains(t, out.String(), "Positive number\n")
}

func TestRunGivesUpAfterAttempts(t *testing.T) {
	s, in, _ := newSession(t)
	s.Attempts = 2
	in.EXPECT().ReadLine("Enter a number: ").Return("x", nil).Times(2)

	err := Run(context.Background(), "factorial", s)
	require.Error(t, err)
	require.Equal(t, ErrInvalidInput, errors.Cause(err))
}

func TestRunStopsOnEOF(t *testing.T) {
	s, in, _ := newSession(t)
	in.EXPECT().ReadLine("Enter a number: ").Return("", io.EOF)

	err := Run(context.Background(), "factorial", s)
	require.Equal(t, io.EOF, errors.Cause(err))
}

func TestRunSignLoop(t *testing.T) {
	s, in, out := newSession(t)
	gomock.InOrder(
		in.EXPECT().ReadLine("Enter a number: ").Return("4", nil),
		in.EXPECT().ReadLine(finishPrompt).Return("N", nil),
		in.EXPECT().ReadLine("Enter a number: ").Return("0", nil),
		in.EXPECT().ReadLine(finishPrompt).Return("", nil),
		in.EXPECT().ReadLine("Enter a number: ").Return("-2", nil),
		in.EXPECT().ReadLine(finishPrompt).Return("Y", nil),
	)

	require.NoError(t, Run(context.Background(), "sign", s))
	require.Equal(t, "Positive\nThe number is equal to 0\nNegative\n", out.String())
}

func TestRunSignEndsOnEOF(t *testing.T) {
	s, in, out := newSession(t)
	gomock.InOrder(
		in.EXPECT().ReadLine("Enter a number: ").Return("1", nil),
		in.EXPECT().ReadLine(finishPrompt).Return("", io.EOF),
	)

	require.NoError(t, Run(context.Background(), "sign", s))
	require.Equal(t, "Positive\n", out.String())
}

func TestRunSignCancelled(t *testing.T) {
	s, _, _ := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, Run(ctx, "sign", s), context.Canceled)
}

func TestRunUnknown(t *testing.T) {
	s, _, _ := newSession(t)
	err := Run(context.Background(), "nope", s)
	require.Equal(t, ErrUnknown, errors.Cause(err))
}

func TestFinished(t *testing.T) {
	require.True(t, finished("Y"))
	require.True(t, finished(" yes"))
	require.False(t, finished("N"))
	require.False(t, finished(""))
}
