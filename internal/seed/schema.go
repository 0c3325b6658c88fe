package seed

// Entry is one bookmark in the fixture file.
type Entry struct {
	URL   string   `yaml:"url"`
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// OwnerFixtures groups the fixture bookmarks of one owner.
type OwnerFixtures struct {
	Owner     string  `yaml:"owner"`
	Bookmarks []Entry `yaml:"bookmarks"`
}

// Config is the root structure of the seed YAML file.
type Config []OwnerFixtures
