package scene

import (
	"fmt"
	"os"
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/serror"
	"github.com/stride-xr/stride/worker"
	"gopkg.in/yaml.v3"
)

// fileSurface is the YAML form of a surface. Boxes carry min/max corners,
// triangles carry three points.
type fileSurface struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind"`
	Min    []float32   `yaml:"min,omitempty"`
	Max    []float32   `yaml:"max,omitempty"`
	Points [][]float32 `yaml:"points,omitempty"`
}

type fileTarget struct {
	Name     string    `yaml:"name"`
	Position []float32 `yaml:"position"`
	Scale    float32   `yaml:"scale,omitempty"`
}

type sceneFile struct {
	Name      string        `yaml:"name"`
	Spawn     []float32     `yaml:"spawn,omitempty"`
	Walkable  []fileSurface `yaml:"walkable"`
	Obstacles []fileSurface `yaml:"obstacles,omitempty"`
	Targets   []fileTarget  `yaml:"targets,omitempty"`
}

// Parse builds a scene from a YAML scene description.
func Parse(data []byte) (*Scene, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error decoding scene: %v", err)
	}

	sc := New(f.Name)
	if len(f.Spawn) > 0 {
		spawn, err := vec3FromSlice(f.Spawn)
		if err != nil {
			return nil, serror.New("spawn: %v", err)
		}
		sc.Spawn = spawn
	}
	for _, fs := range f.Walkable {
		surf, err := buildSurface(fs)
		if err != nil {
			return nil, err
		}
		sc.Walkable.Add(surf)
	}
	for _, fs := range f.Obstacles {
		surf, err := buildSurface(fs)
		if err != nil {
			return nil, err
		}
		sc.Obstacles.Add(surf)
	}
	for _, ft := range f.Targets {
		pos, err := vec3FromSlice(ft.Position)
		if err != nil {
			return nil, serror.New("target %q: %v", ft.Name, err)
		}
		sc.Targets = append(sc.Targets, NewTarget(ft.Name, pos, ft.Scale))
	}
	return sc, nil
}

// Load reads and parses a single scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scene file: %v", err)
	}
	return Parse(data)
}

// LoadAll parses the given scene files on the worker pool and returns the
// scenes in the order the paths were given. The first error encountered is
// returned, alongside any scenes that did load.
func LoadAll(paths ...string) ([]*Scene, error) {
	scenes := make([]*Scene, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		worker.Submit(func() {
			defer wg.Done()
			scenes[i], errs[i] = Load(path)
		})
	}
	wg.Wait()

	loaded := make([]*Scene, 0, len(paths))
	for i, sc := range scenes {
		if errs[i] != nil {
			return loaded, errs[i]
		}
		loaded = append(loaded, sc)
	}
	return loaded, nil
}

func buildSurface(fs fileSurface) (Surface, error) {
	switch fs.Kind {
	case "box", "":
		min, err := vec3FromSlice(fs.Min)
		if err != nil {
			return Surface{}, serror.New("surface %q: min: %v", fs.Name, err)
		}
		max, err := vec3FromSlice(fs.Max)
		if err != nil {
			return Surface{}, serror.New("surface %q: max: %v", fs.Name, err)
		}
		return NewBox(fs.Name, cube.Box(
			min.X(), min.Y(), min.Z(),
			max.X(), max.Y(), max.Z(),
		)), nil
	case "triangle":
		if len(fs.Points) != 3 {
			return Surface{}, serror.New("surface %q: triangle needs 3 points, got %d", fs.Name, len(fs.Points))
		}
		var pts [3]mgl32.Vec3
		for i, p := range fs.Points {
			v, err := vec3FromSlice(p)
			if err != nil {
				return Surface{}, serror.New("surface %q: point %d: %v", fs.Name, i, err)
			}
			pts[i] = v
		}
		return NewTriangle(fs.Name, pts[0], pts[1], pts[2]), nil
	}
	return Surface{}, serror.New("surface %q: unknown kind %q", fs.Name, fs.Kind)
}

func vec3FromSlice(vals []float32) (mgl32.Vec3, error) {
	if len(vals) != 3 {
		return mgl32.Vec3{}, serror.New("expected 3 components, got %d", len(vals))
	}
	return mgl32.Vec3{vals[0], vals[1], vals[2]}, nil
}
