package github

// Profile is the public user profile returned by the GitHub API.
//
// Optional fields are pointers so renderers can distinguish an absent value
// from an empty string.
type Profile struct {
	Login           string  `json:"login"`
	Name            *string `json:"name"`
	Bio             *string `json:"bio"`
	AvatarURL       string  `json:"avatar_url"`
	HTMLURL         string  `json:"html_url"`
	Blog            *string `json:"blog"`
	TwitterUsername *string `json:"twitter_username"`
	Email           *string `json:"email"`
}

// DisplayName returns the profile name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Login
}

// HasBio reports whether the profile carries a non-empty bio.
func (p Profile) HasBio() bool {
	return p.Bio != nil && *p.Bio != ""
}

// HasBlog reports whether the profile carries a non-empty blog URL.
func (p Profile) HasBlog() bool {
	return p.Blog != nil && *p.Blog != ""
}

// HasTwitter reports whether the profile carries a twitter handle.
func (p Profile) HasTwitter() bool {
	return p.TwitterUsername != nil && *p.TwitterUsername != ""
}

// HasEmail reports whether the profile carries a public email.
func (p Profile) HasEmail() bool {
	return p.Email != nil && *p.Email != ""
}

// Repository is one entry of the repository list returned by the GitHub API.
type Repository struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	StargazersCount int     `json:"stargazers_count"`
	HTMLURL         string  `json:"html_url"`
	Private         bool    `json:"private"`
	Fork            bool    `json:"fork"`
}

// HasDescription reports whether the repository carries a description.
func (r Repository) HasDescription() bool {
	return r.Description != nil && *r.Description != ""
}
