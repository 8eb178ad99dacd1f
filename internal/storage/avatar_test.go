package storage_test

import (
    "bytes"
    "image"
    "image/png"
    "path/filepath"
    "testing"

    "github.com/disintegration/imaging"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/gin-blog/internal/storage"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
    t.Helper()
    var buf bytes.Buffer
    require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
    return &buf
}

func TestAvatarStore_Save(t *testing.T) {
    store, err := storage.NewAvatarStore(t.TempDir())
    require.NoError(t, err)

    name, err := store.Save(encodePNG(t, 500, 300), "portrait.png")
    require.NoError(t, err)
    assert.NotEmpty(t, name)
    assert.Equal(t, ".png", filepath.Ext(name))

    img, err := imaging.Open(filepath.Join(store.Dir(), name))
    require.NoError(t, err)
    bounds := img.Bounds()
    // 等比缩进 125×125：500×300 -> 125×75
    assert.Equal(t, 125, bounds.Dx())
    assert.Equal(t, 75, bounds.Dy())
}

func TestAvatarStore_Save_RandomNames(t *testing.T) {
    store, err := storage.NewAvatarStore(t.TempDir())
    require.NoError(t, err)

    a, err := store.Save(encodePNG(t, 10, 10), "same.png")
    require.NoError(t, err)
    b, err := store.Save(encodePNG(t, 10, 10), "same.png")
    require.NoError(t, err)
    assert.NotEqual(t, a, b)
}

func TestAvatarStore_Save_UnknownExtensionFallsBackToJpg(t *testing.T) {
    store, err := storage.NewAvatarStore(t.TempDir())
    require.NoError(t, err)

    name, err := store.Save(encodePNG(t, 10, 10), "weird.webp")
    require.NoError(t, err)
    assert.Equal(t, ".jpg", filepath.Ext(name))
}

func TestAvatarStore_Save_RejectsGarbage(t *testing.T) {
    store, err := storage.NewAvatarStore(t.TempDir())
    require.NoError(t, err)

    _, err = store.Save(bytes.NewBufferString("not an image"), "x.png")
    assert.Error(t, err)
}
