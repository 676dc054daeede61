package gameframe

// =================================
// Toggle inputs
// =================================
const (
	EnvToggleVkBasalt = "GAMEFRAME_VKBASALT"
	EnvToggleMangoHud = "GAMEFRAME_MANGOHUD"
	EnvToggleAPI      = "GAMEFRAME_API" // read, never acted on
	EnvToggleFPS      = "GAMEFRAME_FPS"
	EnvToggleVSync    = "GAMEFRAME_VSYNC"
	EnvToggleXWayland = "GAMEFRAME_XWAYLAND"
	EnvToggleProfile  = "GAMEFRAME_PROFILE"

	toggleEnabled   = "1"
	DefaultFPSLimit = "60"
)

// =================================
// Launcher settings
// =================================
const (
	EnvExecMode    = "GAMEFRAME_EXEC_MODE"
	EnvIOPolicy    = "GAMEFRAME_IO_POLICY"
	EnvProfiles    = "GAMEFRAME_PROFILES"
	EnvLauncherCLI = "GAMEFRAME_LAUNCHER_CLI"
)

// =================================
// Produced environment
// =================================
const (
	EnvEnableVkBasalt     = "ENABLE_VKBASALT"
	EnvVkBasaltConfigFile = "VKBASALT_CONFIG_FILE"
	EnvMangoHud           = "MANGOHUD"
	EnvMangoHudConfig     = "MANGOHUD_CONFIG"
	EnvProtonEnable       = "PROTON_ENABLE"
	EnvProtonPath         = "PROTON_PATH"
	EnvDXVKHud            = "DXVK_HUD"
	EnvDXVKConfigFile     = "DXVK_CONFIG_FILE"
	EnvVBlankMode         = "vblank_mode"
	EnvVKPresentMode      = "VK_PRESENT_MODE"
	EnvDisplay            = "DISPLAY"
	EnvSessionType        = "XDG_SESSION_TYPE"
)

// =================================
// Fixed values
// =================================
const (
	VBlankModeSync    = "1" // OpenGL: sync to vblank
	VKPresentModeFIFO = "2" // Vulkan: VK_PRESENT_MODE_FIFO_KHR
	XWaylandDisplay   = ":99"
	XWaylandSession   = "wayland"
	CASSharpness      = "0.5"
	MangoHudFeatures  = "cpu_stats,gpu_stats"
	DXVKHudFields     = "fps,frametimes"
	WindowsExeSuffix  = ".exe"
	ProtonMarker      = "Proton"
	ProtonBinary      = "proton"
	ProtonRunSubcmd   = "run"
	ConfigFilePerms   = 0o644
)

// Exit codes
const (
	ExitUsage        = 1
	ExitLaunchFailed = 1
	ExitPanic        = 101
	ExitInvalidArgs  = 105
	ExitIOError      = 106
)
