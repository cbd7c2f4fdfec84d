package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/lobes"
	"github.com/osuushi/lobes/dbg"
	"github.com/osuushi/lobes/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. "generate" builds an outline and draws it with its
// triangulation. "triangulate" reads an existing outline and prints the
// triangles it would be cut into.

var (
	app = kingpin.New("lobes", "Generate lobed polygon outlines and triangulate them.")

	generateCmd = app.Command("generate", "Generate an outline and draw its triangulation.").Default()
	divisions   = generateCmd.Flag("divisions", "Divisions per ring. Must be even.").Short('d').Default("6").Envar("LOBES_DIVISIONS").Int()
	depth       = generateCmd.Flag("depth", "Recursion depth.").Short('n').Default("2").Envar("LOBES_DEPTH").Int()
	seed        = generateCmd.Flag("seed", "Seed for the jitter. Random if unset.").Envar("LOBES_SEED").Int64()
	noJitter    = generateCmd.Flag("no-jitter", "Place every point exactly on its ring.").Bool()
	format      = generateCmd.Flag("format", "Output format.").Short('f').Default("png").Enum("png", "svg", "text")
	out         = generateCmd.Flag("out", "Output file. Defaults to a random name, or stdout for text.").Short('o').String()
	size        = generateCmd.Flag("size", "Canvas size in pixels.").Default("600").Int()
	labels      = generateCmd.Flag("labels", "Label triangles with readable names.").Bool()
	showImage   = generateCmd.Flag("imgcat", "Also print the PNG to the terminal (iTerm only).").Bool()
	check       = generateCmd.Flag("check", "Sanity check the triangulation.").Bool()

	triangulateCmd = app.Command("triangulate", "Triangulate an outline. Input on stdin should be newline separated points in the form \"x y\".")
	svgInput       = triangulateCmd.Flag("svg", "Read the first <polygon> of an SVG file instead of stdin.").ExistingFile()
)

func main() {
	log.SetFlags(0)
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case generateCmd.FullCommand():
		if err := runGenerate(); err != nil {
			log.Fatal(aurora.Red(fmt.Sprintf("generate: %v", err)))
		}
	case triangulateCmd.FullCommand():
		if err := runTriangulate(); err != nil {
			log.Fatal(aurora.Red(fmt.Sprintf("triangulate: %v", err)))
		}
	}
}

func runGenerate() error {
	var opts []lobes.Option
	switch {
	case *noJitter:
		opts = append(opts, lobes.WithoutJitter())
	case *seed != 0:
		opts = append(opts, lobes.WithSeed(*seed))
	}

	result, err := lobes.GeneratePolygon(*divisions, *depth, opts...)
	if err != nil {
		return err
	}
	log.Printf("%s %v points, %v triangles",
		aurora.Green("generated"), aurora.Bold(len(result.Outline)), aurora.Bold(len(result.Triangles)))

	if *check {
		if err := result.Check(); err != nil {
			return errors.Wrap(err, "check failed")
		}
		log.Printf("%s area %g", aurora.Green("check passed"), result.Outline.Area())
	}

	if *format == "text" {
		w := os.Stdout
		if *out != "" {
			f, err := os.Create(*out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return writeText(w, result)
	}

	path := *out
	if path == "" {
		path = dbg.FileName("." + *format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	style := render.DefaultStyle
	style.Labels = *labels
	vp := render.DefaultViewport(*size)
	if *format == "svg" {
		err = render.SVG(f, result.Outline, result.Triangles, vp, style)
	} else {
		err = render.PNG(f, result.Outline, result.Triangles, vp, style)
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	log.Printf("%s %s", aurora.Cyan("wrote"), path)

	if *showImage && *format == "png" {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

func runTriangulate() error {
	var (
		outline lobes.Outline
		err     error
	)
	if *svgInput != "" {
		outline, err = readSVGOutline(*svgInput)
	} else {
		outline, err = readOutline(os.Stdin)
	}
	if err != nil {
		return err
	}
	log.Printf("Read %d points", len(outline))

	triangles, err := lobes.Triangulate(outline)
	if err != nil {
		return err
	}
	return writeText(os.Stdout, &lobes.Result{Outline: outline, Triangles: triangles})
}

// Points as "x y" lines, then a blank line, then triangles as "i j k" lines.
func writeText(w io.Writer, result *lobes.Result) error {
	bw := bufio.NewWriter(w)
	for _, p := range result.Outline {
		fmt.Fprintf(bw, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintln(bw)
	for _, tri := range result.Triangles {
		fmt.Fprintf(bw, "%d %d %d\n", tri[0], tri[1], tri[2])
	}
	return bw.Flush()
}

// Reads points until EOF or the first blank line after some points.
func readOutline(in io.Reader) (lobes.Outline, error) {
	outline := lobes.Outline{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(outline) > 0 {
				break
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		outline = append(outline, point)
	}
	return outline, scanner.Err()
}

func parsePoint(line string) (lobes.Vector2, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(parts) != 2 {
		return lobes.Vector2{}, errors.Errorf("invalid point %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return lobes.Vector2{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return lobes.Vector2{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return lobes.Vector2{X: x, Y: y}, nil
}

func readSVGOutline(path string) (lobes.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSVGOutline(f)
}

// Only the first polygon is read. SVG's Y axis points down, so Y is flipped,
// and then the points are reversed if that's what it takes to make the outline
// counterclockwise.
func parseSVGOutline(r io.Reader) (lobes.Outline, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon found")
	}

	outline := lobes.Outline{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		point, err := parsePoint(pointString)
		if err != nil {
			return nil, err
		}
		outline = append(outline, lobes.Vector2{X: point.X, Y: -point.Y})
	}
	if outline.Area() < 0 {
		outline = outline.Reverse()
	}
	return outline, nil
}
