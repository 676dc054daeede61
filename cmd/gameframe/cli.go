package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/provide-io/gameframe/pkg/gameframe"
	"github.com/provide-io/gameframe/pkg/utils/launchopts"
)

// runCLI executes the inspection CLI and returns the process exit code.
func runCLI(args []string, launcher *gameframe.Launcher, detector *gameframe.Detector, out io.Writer) int {
	if args == nil {
		args = []string{}
	}
	exitCode := 0
	root := newRootCmd(launcher, detector, &exitCode)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(launcher.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(launcher.Stderr, "Error: %v\n", err)
		return gameframe.ExitInvalidArgs
	}
	return exitCode
}

func newRootCmd(launcher *gameframe.Launcher, detector *gameframe.Detector, exitCode *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "gameframe",
		Short:         "Inspect and run gameframe launches",
		Long:          "gameframe CLI mode (GAMEFRAME_LAUNCHER_CLI=1).\nWithout it, gameframe <command> [args...] launches the command directly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showInfo(cmd.OutOrStdout(), launcher)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show toggles and launcher settings (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showInfo(cmd.OutOrStdout(), launcher)
			},
		},
		&cobra.Command{
			Use:                "plan <command> [args...]",
			Short:              "Print the launch plan without writing or executing anything",
			DisableFlagParsing: true,
			Args:               cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				plan, err := launcher.Prepare(args)
				if err != nil {
					return err
				}
				printPlan(cmd.OutOrStdout(), plan)
				return nil
			},
		},
		&cobra.Command{
			Use:                "run <command> [args...]",
			Short:              "Launch a command, same as running without CLI mode",
			DisableFlagParsing: true,
			Args:               cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				*exitCode = launcher.Run(args)
			},
		},
		newDetectCmd(detector),
		&cobra.Command{
			Use:   "profiles",
			Short: "List per-game profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := gameframe.ProfilesPath(launcher.Lookup, launcher.Dirs.ProfilesFile())
				profiles, err := gameframe.LoadProfiles(path)
				if err != nil {
					return err
				}
				printProfiles(cmd.OutOrStdout(), path, profiles)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "gameframe %s\n", version)
				fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", buildTimestamp())
			},
		},
	)

	return root
}

func newDetectCmd(detector *gameframe.Detector) *cobra.Command {
	var temp int
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Probe the GPU and graphics stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := detector.Detect(context.Background())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GPU vendor:     %s\n", info.GPUVendor)
			fmt.Fprintf(out, "Vulkan:         %s\n", onOff(info.VulkanSupport))
			fmt.Fprintf(out, "OpenGL version: %s\n", info.OpenGLVersion)
			fmt.Fprintf(out, "XWayland:       %s\n", onOff(info.XWayland))
			if cmd.Flags().Changed("temp") {
				fmt.Fprintf(out, "Suggested %s=%d (GPU at %d°C)\n",
					gameframe.EnvToggleFPS, gameframe.SuggestFPSLimit(temp), temp)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&temp, "temp", 0, "GPU temperature in °C for an FPS limit suggestion")
	return cmd
}

func showInfo(out io.Writer, launcher *gameframe.Launcher) error {
	t := gameframe.ReadToggles(launcher.Lookup)

	fmt.Fprintf(out, "gameframe %s\n", version)
	fmt.Fprintf(out, "Home:      %s\n", launcher.Dirs.Home())
	fmt.Fprintf(out, "Exec mode: %s\n", gameframe.GetExecMode(launcher.Lookup))
	fmt.Fprintf(out, "IO policy: %s\n", gameframe.GetIOPolicy(launcher.Lookup))
	fmt.Fprintln(out, "Toggles:")
	fmt.Fprintf(out, "  %-10s %s\n", "vkbasalt", onOff(t.VkBasalt))
	fmt.Fprintf(out, "  %-10s %s\n", "mangohud", onOff(t.MangoHud))
	fmt.Fprintf(out, "  %-10s %s\n", "vsync", onOff(t.VSync))
	fmt.Fprintf(out, "  %-10s %s\n", "xwayland", onOff(t.XWayland))
	fmt.Fprintf(out, "  %-10s %s\n", "profile", onOff(t.Profile))
	fmt.Fprintf(out, "  %-10s %s\n", "fps limit", t.FPSLimit)
	api := t.GraphicsAPI
	if api == "" {
		api = "(unset)"
	}
	fmt.Fprintf(out, "  %-10s %s (informational)\n", "api", api)
	return nil
}

func printPlan(out io.Writer, plan *gameframe.Plan) {
	fmt.Fprintf(out, "Command: %s\n", plan.Command)
	if plan.ProfileName != "" {
		fmt.Fprintf(out, "Profile: %s\n", plan.ProfileName)
	}
	if plan.Runner != nil {
		found := "not found, using PATH"
		if plan.Runner.Found {
			found = "found"
		}
		fmt.Fprintf(out, "Runner:  %s (%s)\n", plan.Runner.Path, found)
	}
	fmt.Fprintf(out, "Argv:    %s\n", launchopts.Quote(plan.Argv))

	fmt.Fprintln(out, "Environment:")
	for _, kv := range plan.Env.Entries() {
		fmt.Fprintf(out, "  %s\n", kv)
	}

	fmt.Fprintln(out, "Files:")
	for _, f := range plan.Files {
		fmt.Fprintf(out, "  %s\n", f.Path)
		for _, line := range f.Lines {
			fmt.Fprintf(out, "    | %s\n", line)
		}
	}
}

func printProfiles(out io.Writer, path string, profiles gameframe.Profiles) {
	fmt.Fprintf(out, "Profiles file: %s\n", path)
	for _, name := range profiles.Names() {
		p := profiles[name]
		var settings []string
		if p.FPSLimit != "" {
			settings = append(settings, "fps_limit="+p.FPSLimit)
		}
		for _, s := range []struct {
			key string
			val *bool
		}{
			{"vkbasalt", p.VkBasalt},
			{"mangohud", p.MangoHud},
			{"vsync", p.VSync},
			{"xwayland", p.XWayland},
		} {
			if s.val != nil {
				settings = append(settings, s.key+"="+strconv.FormatBool(*s.val))
			}
		}
		if p.LaunchOptions != "" {
			settings = append(settings, "launch_options="+strconv.Quote(p.LaunchOptions))
		}
		fmt.Fprintf(out, "  %s: %s\n", name, strings.Join(settings, " "))
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
