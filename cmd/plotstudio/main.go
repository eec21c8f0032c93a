package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"plotstudio/geom"
	"plotstudio/objects"
	"plotstudio/plotter"
	"plotstudio/plotter/axidraw"
	"plotstudio/render"
	"plotstudio/studio"
)

var (
	configPath = flag.String("config", "", "Studio configuration file (JSON)")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	mock       = flag.Bool("mock", false, "Use the in-memory mock instead of hardware")
	out        = flag.String("out", "", "Preview output file (default preview-<session>.png)")
)

func main() {
	flag.Parse()

	config, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *device != "" {
		config.Plotter.Device = *device
	}

	dev, err := openPlotter(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	if closer, ok := dev.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	st, err := config.Build(dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("plotstudio - pen plotter studio console")
	fmt.Printf("Session %s\n", st.Session())
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		quit, err := dispatch(st, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if quit {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*studio.Config, error) {
	if *configPath == "" {
		return studio.DefaultConfig(), nil
	}
	data, err := os.ReadFile(*configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return studio.LoadConfig(data)
}

func openPlotter(config *studio.Config) (plotter.Plotter, error) {
	if *mock {
		fmt.Println("Using in-memory mock plotter")
		return plotter.NewMock(), nil
	}

	cfg := axidraw.DefaultConfig(config.Plotter.Device)
	cfg.StepsPerUnit = config.Plotter.StepsPerUnit
	cfg.Speed = config.Plotter.Speed
	cfg.PenDelayMS = config.Plotter.PenDelayMS

	fmt.Printf("Connecting to plotter on %s...\n", config.Plotter.Device)
	p, err := axidraw.Connect(cfg)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Connected: %s\n", p.Version())
	return p, nil
}

func dispatch(st *studio.Studio, args []string) (quit bool, err error) {
	switch args[0] {
	case "quit", "exit", "q":
		fmt.Println("Goodbye!")
		return true, nil

	case "help", "?":
		printHelp()
		return false, nil

	case "objects":
		for _, name := range st.Names() {
			obj := st.Object(name)
			min, max := obj.Bounds()
			var verbs []string
			for v := range obj.Verbs() {
				verbs = append(verbs, v)
			}
			fmt.Printf("  %-12s bounds (%g,%g)-(%g,%g) verbs: %s\n",
				name, min.X, min.Y, max.X, max.Y, strings.Join(verbs, ", "))
		}
		return false, nil

	case "add":
		return false, cmdAdd(st, args[1:])

	case "do":
		if len(args) < 3 {
			return false, fmt.Errorf("usage: do <object> <verb> [args...]")
		}
		return false, runVerbArgs(st, args[1], args[2], args[3:])

	case "jog":
		return false, cmdJog(st, args[1:])

	case "pen":
		return false, cmdPen(st, args[1:])

	case "offset":
		return false, cmdOffset(st, args[1:])

	case "pos":
		p := st.Plotter()
		fmt.Printf("pos (%g,%g) pen %s\n", p.Pos().X, p.Pos().Y, p.State())
		return false, nil

	case "path":
		for i, seg := range st.Plotter().Path() {
			fmt.Printf("  %3d  (%g,%g) -> (%g,%g)  pen %s\n",
				i, seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, seg.Pen)
		}
		return false, nil

	case "preview":
		return false, cmdPreview(st, args[1:])

	default:
		// Compact "<object>_<verb>" form.
		if strings.Contains(args[0], "_") {
			routine, rerr := st.ResolveToken(args[0])
			if rerr == nil {
				vals, perr := parseFloats(args[1:])
				if perr != nil {
					return false, perr
				}
				return false, routine(vals...)
			}
		}
		return false, fmt.Errorf("unknown command %q (type 'help' for available commands)", args[0])
	}
}

func runVerbArgs(st *studio.Studio, object, verb string, raw []string) error {
	routine, err := st.Resolve(object, verb)
	if err != nil {
		return err
	}
	args, err := parseFloats(raw)
	if err != nil {
		return err
	}
	return routine(args...)
}

func cmdAdd(st *studio.Studio, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: add canvas|cleaner <name> ...")
	}
	switch args[0] {
	case "canvas":
		if len(args) != 8 {
			return fmt.Errorf("usage: add canvas <name> <w> <h> <startX> <startY> <endX> <endY>")
		}
		vals, err := parseFloats(args[2:])
		if err != nil {
			return err
		}
		canvas, err := objects.NewCanvas(
			geom.V(vals[0], vals[1]), geom.V(vals[2], vals[3]), geom.V(vals[4], vals[5]))
		if err != nil {
			return err
		}
		fmt.Printf("added canvas %q\n", st.Add(canvas, args[1]))
		return nil

	case "cleaner":
		if len(args) != 5 {
			return fmt.Errorf("usage: add cleaner <name> <x> <y> <radius>")
		}
		vals, err := parseFloats(args[2:])
		if err != nil {
			return err
		}
		cleaner := objects.NewBrushCleaner(geom.V(vals[0], vals[1]), vals[2])
		fmt.Printf("added cleaner %q\n", st.Add(cleaner, args[1]))
		return nil

	default:
		return fmt.Errorf("unknown object kind %q", args[0])
	}
}

func cmdJog(st *studio.Studio, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: jog <dx> <dy>")
	}
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}
	p := st.Plotter()
	if err := p.MoveTo(p.Pos().Add(geom.V(vals[0], vals[1]))); err != nil {
		return err
	}
	fmt.Printf("pos (%g,%g)\n", p.Pos().X, p.Pos().Y)
	return nil
}

func cmdPen(st *studio.Studio, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pen up|down")
	}
	switch args[0] {
	case "up":
		return st.Plotter().PenUp()
	case "down":
		return st.Plotter().PenDown()
	default:
		return fmt.Errorf("unknown pen state %q", args[0])
	}
}

func cmdOffset(st *studio.Studio, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: offset set|reset|save|load ...")
	}
	p := st.Plotter()
	switch args[0] {
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: offset set <x> <y>")
		}
		vals, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		p.SetAlignmentOffsets(geom.V(vals[0], vals[1]))
		return nil
	case "reset":
		p.ResetAlignmentOffsets()
		return nil
	case "save":
		if len(args) != 4 {
			return fmt.Errorf("usage: offset save <file> <x> <y>")
		}
		vals, err := parseFloats(args[2:])
		if err != nil {
			return err
		}
		return studio.SaveOffsets(args[1], geom.V(vals[0], vals[1]))
	case "load":
		if len(args) != 2 {
			return fmt.Errorf("usage: offset load <file>")
		}
		offset, err := studio.LoadOffsets(args[1])
		if err != nil {
			return err
		}
		p.SetAlignmentOffsets(offset)
		fmt.Printf("offset (%g,%g)\n", offset.X, offset.Y)
		return nil
	default:
		return fmt.Errorf("unknown offset command %q", args[0])
	}
}

func cmdPreview(st *studio.Studio, args []string) error {
	name := *out
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		name = fmt.Sprintf("preview-%.8s.png", st.Session())
	}

	min, max := st.WorkingArea()
	v := render.NewPreview(min, max)

	var objs []objects.Drawable
	for _, n := range st.Names() {
		objs = append(objs, st.Object(n))
	}

	var err error
	if strings.HasSuffix(name, ".pdf") {
		err = v.SavePDF(name, st.Plotter().Path(), objs)
	} else {
		err = v.SavePNG(name, st.Plotter().Path(), objs)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", name)
	return nil
}

func parseFloats(raw []string) ([]float64, error) {
	vals := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", s)
		}
		vals[i] = v
	}
	return vals, nil
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  objects                                    - List registered objects")
	fmt.Println("  add canvas <name> <w> <h> <sx> <sy> <ex> <ey>")
	fmt.Println("  add cleaner <name> <x> <y> <radius>")
	fmt.Println("  do <object> <verb> [args...]               - Run an object verb")
	fmt.Println("  <object>_<verb> [args...]                  - Compact verb form")
	fmt.Println("  jog <dx> <dy>                              - Move relative to current position")
	fmt.Println("  pen up|down                                - Pen control")
	fmt.Println("  offset set <x> <y> | reset                 - Alignment offsets")
	fmt.Println("  offset save <file> <x> <y> | load <file>   - Offset persistence")
	fmt.Println("  pos                                        - Current position and pen state")
	fmt.Println("  path                                       - Print the recorded path")
	fmt.Println("  preview [file]                             - Render a PNG/PDF preview")
	fmt.Println("  quit/exit/q                                - Exit the program")
	fmt.Println()
}
