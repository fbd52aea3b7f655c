package github

import "sort"

// maxProjects is the number of cards shown on the portfolio page.
const maxProjects = 6

// TopProjects derives the rendered project list from a repository listing:
// private and forked repositories are excluded, the remainder is ordered by
// star count descending (ties keep their original relative order), and the
// list is truncated to the top six.
func TopProjects(repos []Repository) []Repository {
	projects := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Private || repo.Fork {
			continue
		}
		projects = append(projects, repo)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].StargazersCount > projects[j].StargazersCount
	})

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	return projects
}
