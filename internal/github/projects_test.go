package github

import "testing"

func repo(name string, stars int, private, fork bool) Repository {
	return Repository{Name: name, StargazersCount: stars, Private: private, Fork: fork}
}

func TestTopProjectsFiltersAndSortsByStars(t *testing.T) {
	repos := []Repository{
		repo("three", 3, false, false),
		repo("secret", 99, true, false),
		repo("ten-a", 10, false, false),
		repo("one", 1, false, false),
		repo("forked", 50, false, true),
		repo("ten-b", 10, false, false),
		repo("zero", 0, false, false),
	}

	projects := TopProjects(repos)

	want := []string{"ten-a", "ten-b", "three", "one", "zero"}
	if len(projects) != len(want) {
		t.Fatalf("projects = %d entries, want %d", len(projects), len(want))
	}
	for i, name := range want {
		if projects[i].Name != name {
			t.Fatalf("projects[%d] = %q, want %q", i, projects[i].Name, name)
		}
	}
}

func TestTopProjectsStableTieOrder(t *testing.T) {
	repos := []Repository{
		repo("first", 10, false, false),
		repo("second", 10, false, false),
		repo("third", 10, false, false),
	}
	projects := TopProjects(repos)
	for i, name := range []string{"first", "second", "third"} {
		if projects[i].Name != name {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, projects[i].Name, name)
		}
	}
}

func TestTopProjectsTruncatesToSix(t *testing.T) {
	var repos []Repository
	for i := 0; i < 10; i++ {
		repos = append(repos, repo("r", i, false, false))
	}
	if got := len(TopProjects(repos)); got != 6 {
		t.Fatalf("projects = %d entries, want 6", got)
	}
}

func TestTopProjectsEmptyInput(t *testing.T) {
	if got := TopProjects(nil); len(got) != 0 {
		t.Fatalf("projects = %d entries, want 0", len(got))
	}
}

func TestTopProjectsExcludesPrivateAndForks(t *testing.T) {
	repos := []Repository{
		repo("secret", 1, true, false),
		repo("forked", 2, false, true),
	}
	if got := TopProjects(repos); len(got) != 0 {
		t.Fatalf("projects = %d entries, want 0", len(got))
	}
}
