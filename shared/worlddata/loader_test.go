package worlddata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="8" height="6" tilewidth="50" tileheight="50" infinite="0">
 <objectgroup id="1" name="Decor">
  <object id="1" x="0" y="0" width="10" height="10"/>
 </objectgroup>
 <objectgroup id="2" name="Hotspots">
  <object id="2" name="Home" x="72" y="72" width="56" height="56">
   <properties>
    <property name="section" value="accueil"/>
   </properties>
   <ellipse/>
  </object>
  <object id="3" x="200" y="100" width="120" height="80">
   <properties>
    <property name="section" value="contact"/>
    <property name="label" value="Contact"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"worlds/test.tmx": {Data: []byte(testMap)}}

	world, err := Load(fsys, "worlds/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if world.Width != 400 || world.Height != 300 {
		t.Errorf("size = %vx%v, want 400x300", world.Width, world.Height)
	}
	if len(world.Hotspots) != 2 {
		t.Fatalf("got %d hotspots, want 2", len(world.Hotspots))
	}

	home := world.Hotspots[0]
	if !home.Ellipse || home.X != 100 || home.Y != 100 || home.W != 56 {
		t.Errorf("home = %+v", home)
	}
	if home.Label != "Home" {
		t.Errorf("label should fall back to the object name, got %q", home.Label)
	}

	contact := world.Hotspots[1]
	if contact.Ellipse || contact.X != 260 || contact.Y != 140 || contact.Section != "contact" {
		t.Errorf("contact = %+v", contact)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "worlds/none.tmx"); err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

func TestLoadWithoutHotspots(t *testing.T) {
	empty := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="2" height="2" tilewidth="50" tileheight="50"></map>
`
	fsys := fstest.MapFS{"w.tmx": {Data: []byte(empty)}}
	_, err := Load(fsys, "w.tmx")
	if !errors.Is(err, ErrNoHotspots) {
		t.Fatalf("err = %v, want ErrNoHotspots", err)
	}
}
