package provider

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipeSuccess(t *testing.T) {

	for i := 0; i < 1000; i++ {
		func() {
			p := NewPipe(func(w io.Writer) error {
				return json.NewEncoder(w).Encode(map[string]interface{}{
					"k1": "val1",
					"k2": "val2",
				})
			})
			defer func() { require.NoError(t, p.Close()) }()

			data, err := io.ReadAll(p)
			require.NoError(t, err)
			require.Equal(t, `{"k1":"val1","k2":"val2"}`+"\n", string(data))

			n, err := p.Read(make([]byte, 10))
			require.Equal(t, 0, n)
			require.Equal(t, io.EOF, err)
		}()
	}
}

func TestPipeEncodeError(t *testing.T) {

	errBoom := errors.New("boom")

	p := NewPipe(func(w io.Writer) error {
		return errBoom
	})
	defer func() { require.NoError(t, p.Close()) }()

	_, err := io.ReadAll(p)
	require.Equal(t, errBoom, err)
}

func TestPipeEarlyClose(t *testing.T) {

	for i := 0; i < 1000; i++ {
		p := NewPipe(func(w io.Writer) error {
			for {
				if _, err := w.Write([]byte("0123456789")); err != nil {
					return err
				}
			}
		})

		n, err := p.Read(make([]byte, 2))
		require.NoError(t, err)
		require.Equal(t, 2, n)

		require.NoError(t, p.Close())
		require.NoError(t, p.Close())
	}
}
