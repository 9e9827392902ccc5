package model

// brandingImpl is the branding-block façade implementation.
type brandingImpl struct {
	logo     string
	fontName string
	fontURL  string
}

func (b *brandingImpl) SetLogo(path string) { b.logo = path }
func (b *brandingImpl) SetFont(name, url string) {
	b.fontName = name
	b.fontURL = url
}

// terminologyImpl is the terminology-block façade implementation — one
// renamed word per fixed term (§6 Terminology interface).
type terminologyImpl struct {
	terms map[string]string
}

func (t *terminologyImpl) Set(term, value string) { t.terms[term] = value }

// configurationImpl is the configuration-block façade implementation.
type configurationImpl struct {
	properties map[string]string
}

func (c *configurationImpl) Set(key, value string) { c.properties[key] = value }

// usersImpl is the users-block façade implementation.
type usersImpl struct {
	users []userEntry
}

type userEntry struct {
	username string
	role     string
}

func (u *usersImpl) AddUser(username, role string) {
	u.users = append(u.users, userEntry{username: username, role: role})
}
