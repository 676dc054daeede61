package gameframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadToggles_OnlyLiteralOneEnables(t *testing.T) {
	values := []string{"", "0", "true", "yes", "on", " 1", "1 ", "01", "TRUE"}

	for _, v := range values {
		t.Run("value="+v, func(t *testing.T) {
			tg := ReadToggles(envMap(map[string]string{
				EnvToggleVkBasalt: v,
				EnvToggleMangoHud: v,
				EnvToggleVSync:    v,
				EnvToggleXWayland: v,
				EnvToggleProfile:  v,
			}))
			assert.False(t, tg.VkBasalt)
			assert.False(t, tg.MangoHud)
			assert.False(t, tg.VSync)
			assert.False(t, tg.XWayland)
			assert.False(t, tg.Profile)
		})
	}
}

func TestReadToggles_Absent(t *testing.T) {
	tg := ReadToggles(envMap(nil))

	assert.False(t, tg.VkBasalt)
	assert.False(t, tg.MangoHud)
	assert.False(t, tg.VSync)
	assert.False(t, tg.XWayland)
	assert.Equal(t, DefaultFPSLimit, tg.FPSLimit)
	assert.Empty(t, tg.GraphicsAPI)
	assert.False(t, tg.IsSet(EnvToggleVkBasalt))
}

func TestReadToggles_Enabled(t *testing.T) {
	tg := ReadToggles(envMap(map[string]string{
		EnvToggleVkBasalt: "1",
		EnvToggleMangoHud: "1",
		EnvToggleVSync:    "1",
		EnvToggleXWayland: "1",
		EnvToggleAPI:      "vulkan",
		EnvToggleFPS:      "144",
	}))

	assert.True(t, tg.VkBasalt)
	assert.True(t, tg.MangoHud)
	assert.True(t, tg.VSync)
	assert.True(t, tg.XWayland)
	assert.Equal(t, "vulkan", tg.GraphicsAPI)
	assert.Equal(t, "144", tg.FPSLimit)
}

func TestReadToggles_EmptyFPSUsesDefault(t *testing.T) {
	tg := ReadToggles(envMap(map[string]string{EnvToggleFPS: ""}))
	assert.Equal(t, DefaultFPSLimit, tg.FPSLimit)
}

func TestToggles_WithProfile(t *testing.T) {
	profile := Profile{
		Name:     "game.exe",
		FPSLimit: "90",
		VSync:    boolPtr(true),
		VkBasalt: boolPtr(true),
		MangoHud: boolPtr(true),
	}

	t.Run("fills unset toggles", func(t *testing.T) {
		tg := ReadToggles(envMap(nil)).WithProfile(profile)
		assert.True(t, tg.VSync)
		assert.True(t, tg.VkBasalt)
		assert.True(t, tg.MangoHud)
		assert.False(t, tg.XWayland, "profile leaves xwayland unset")
		assert.Equal(t, "90", tg.FPSLimit)
	})

	t.Run("explicit env wins", func(t *testing.T) {
		tg := ReadToggles(envMap(map[string]string{
			EnvToggleVSync: "0",
			EnvToggleFPS:   "30",
		})).WithProfile(profile)
		assert.False(t, tg.VSync)
		assert.Equal(t, "30", tg.FPSLimit)
		assert.True(t, tg.VkBasalt)
	})

	t.Run("empty fps counts as unset", func(t *testing.T) {
		tg := ReadToggles(envMap(map[string]string{EnvToggleFPS: ""})).WithProfile(profile)
		assert.Equal(t, "90", tg.FPSLimit)
	})

	t.Run("original is untouched", func(t *testing.T) {
		base := ReadToggles(envMap(nil))
		_ = base.WithProfile(profile)
		assert.False(t, base.VSync)
		assert.Equal(t, DefaultFPSLimit, base.FPSLimit)
	})
}
