package artboard

import (
	"context"
	"errors"
	"image/color"
	"sync"
	"testing"
	"time"
)

func TestImageCacheDataURL(t *testing.T) {
	c := NewImageCache(0, nil)
	defer c.Close()

	src := pngDataURL(t, 4, 3, color.NRGBA{R: 255, A: 255})
	if _, state := c.Get(src); state != ImagePending {
		t.Fatalf("first Get state = %v, want pending", state)
	}

	bmp, err := await(t, c.Load(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bmp.Width() != 4 || bmp.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", bmp.Width(), bmp.Height())
	}

	select {
	case got := <-c.Ready():
		if got != src {
			t.Errorf("Ready delivered %q", sourceLabel(got))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Ready did not deliver the decoded source")
	}

	got, state := c.Get(src)
	if state != ImageReady || got != bmp {
		t.Errorf("Get after decode = %v, %v, want the decoded bitmap", got, state)
	}
	if px := pixel(got, 0, 0); px != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want opaque red", px)
	}
}

func TestImageCacheFailuresAreFinal(t *testing.T) {
	c := NewImageCache(0, nil)
	defer c.Close()

	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"not an image", "data:image/png;base64,aGVsbG8=", ErrDecode},
		{"bad base64", "data:image/png;base64,@@@", ErrDecode},
		{"malformed", "data:image/png", ErrDecode},
		{"no fetcher", "https://example.com/a.png", ErrNoSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := await(t, c.Load(tt.source))
			if !errors.Is(err, tt.want) {
				t.Fatalf("decode error = %v, want %v", err, tt.want)
			}
			if _, state := c.Get(tt.source); state != ImageFailed {
				t.Errorf("Get state = %v, want failed", state)
			}
			if c.Pending() != 0 {
				t.Errorf("Pending() = %d after failure, want 0", c.Pending())
			}
			if !errors.Is(c.Err(tt.source), tt.want) {
				t.Errorf("Err() = %v, want %v", c.Err(tt.source), tt.want)
			}
		})
	}
}

// releasingFetcher serves a fixed PNG per source and records releases.
type releasingFetcher struct {
	data string

	mu       sync.Mutex
	fetched  []string
	released []string
}

func (f *releasingFetcher) Fetch(_ context.Context, source string) ([]byte, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, source)
	f.mu.Unlock()
	return parseDataURL(f.data)
}

func (f *releasingFetcher) Release(source string) {
	f.mu.Lock()
	f.released = append(f.released, source)
	f.mu.Unlock()
}

func TestImageCacheFetcherRelease(t *testing.T) {
	f := &releasingFetcher{data: pngDataURL(t, 2, 2, color.NRGBA{B: 255, A: 255})}
	c := NewImageCache(1, f)
	defer c.Close()

	if _, err := await(t, c.Load("blob:one")); err != nil {
		t.Fatal(err)
	}
	if _, err := await(t, c.Load("blob:two")); err != nil {
		t.Fatal(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.released) != 1 || f.released[0] != "blob:one" {
		t.Errorf("released = %v, want [blob:one]", f.released)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestImageCacheSharesPendingDecode(t *testing.T) {
	gate := make(chan struct{})
	data := pngDataURL(t, 1, 1, color.NRGBA{A: 255})
	f := FetcherFunc(func(context.Context, string) ([]byte, error) {
		<-gate
		return parseDataURL(data)
	})
	c := NewImageCache(0, f)
	defer c.Close()

	a := c.Load("k")
	b := c.Load("k")
	if a != b {
		t.Error("concurrent loads of one source started two decodes")
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}
	close(gate)
	if _, err := await(t, a); err != nil {
		t.Fatal(err)
	}
}

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"data:text/plain;base64,aGk=", "hi", false},
		{"data:text/plain;base64,aGk", "hi", false},
		{"data:,a%20b", "a b", false},
		{"data:text/plain", "", true},
	}
	for _, tt := range tests {
		got, err := parseDataURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDataURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("parseDataURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImageStateString(t *testing.T) {
	for s, want := range map[ImageState]string{ImagePending: "pending", ImageReady: "ready", ImageFailed: "failed"} {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}
}
