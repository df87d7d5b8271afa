// Command windemo opens a window, logs every input event it receives and
// optionally clears it through a WebGPU surface every frame.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/window"
	"github.com/gekko3d/window/gpu"
)

func main() {
	configPath := flag.String("config", "", "YAML window description")
	backend := flag.String("backend", "", "Window backend (auto, glfw, x11, headless)")
	width := flag.Uint("width", 0, "Window width")
	height := flag.Uint("height", 0, "Window height")
	title := flag.String("title", "", "Window title")
	debug := flag.Bool("debug", false, "Enable debug logging")
	useGPU := flag.Bool("gpu", false, "Clear the window through a WebGPU surface")
	flag.Parse()

	log := window.NewDefaultLogger("windemo", *debug)
	if err := run(log, *configPath, *backend, uint32(*width), uint32(*height), *title, *useGPU); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(log window.Logger, configPath, backend string, width, height uint32, title string, useGPU bool) error {
	desc := window.DefaultWindowDesc()
	desc.Title = "windemo"
	if configPath != "" {
		var err error
		if desc, err = window.LoadDesc(configPath); err != nil {
			return err
		}
	}
	if backend != "" {
		kind, err := window.ParseBackendKind(backend)
		if err != nil {
			return err
		}
		desc.Backend = kind
	}
	if width > 0 {
		desc.Width = width
	}
	if height > 0 {
		desc.Height = height
	}
	if title != "" {
		desc.Title = title
	}
	desc.Logger = log

	win, err := window.New(desc)
	if err != nil {
		return err
	}
	defer win.Destroy()
	log.Infof("Opened %s", win)

	var ctx *gpu.Context
	if useGPU {
		if ctx, err = gpu.NewContext(win); err != nil {
			return fmt.Errorf("failed to create gpu context: %w", err)
		}
		defer ctx.Release()
	}

	win.SetOnResize(func(w, h uint32) {
		log.Infof("resize %dx%d", w, h)
		if ctx != nil {
			ctx.Resize(win.FramebufferSize())
		}
	})
	win.SetOnKeyboardEvent(func(ev window.KeyboardEvent) {
		log.Debugf("%s", ev)
		if !ev.IsKeyPress() {
			return
		}
		switch ev.Key {
		case window.KeyEscape:
			win.Close()
		case window.KeyTab:
			if win.CursorMode() == window.CursorModeDisabled {
				win.SetCursorMode(window.CursorModeNormal)
			} else {
				win.SetCursorMode(window.CursorModeDisabled)
			}
		case window.KeyKPAdd:
			win.Resize(win.Width()+64, win.Height()+64)
		case window.KeyKPSubtract:
			if win.Width() > 128 && win.Height() > 128 {
				win.Resize(win.Width()-64, win.Height()-64)
			}
		}
	})
	win.SetOnMouseEvent(func(ev window.MouseEvent) {
		if ev.Type == window.MouseMove {
			return
		}
		log.Debugf("mouse %v button=%v pos=%v scroll=%v", ev.Type, ev.Button, ev.Pos, ev.Scroll)
	})
	win.SetOnGamepadEvent(func(ev window.GamepadEvent) {
		log.Infof("gamepad %v %v", ev.Type, ev.Button)
	})
	win.SetOnDropFiles(func(paths []string) {
		for _, p := range paths {
			log.Infof("dropped %s", p)
		}
	})

	for !win.ShouldClose() {
		win.ProcessEvents()
		win.PollGamepadInput()
		if ctx != nil {
			if err := ctx.Clear(wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}); err != nil {
				log.Warnf("frame dropped: %v", err)
			}
		}
	}
	return nil
}
