package assets

import "context"

// versionsURL is the list of every released data version, newest first.
func (l *Loader) versionsURL() string {
	return l.opts.API + "/versions.json"
}

// GetVersions returns all the versions from the Data Dragon.
func (l *Loader) GetVersions(ctx context.Context) ([]string, error) {
	url := l.versionsURL()

	var versions []string
	if err := l.fetchJSON(ctx, url, &versions); err != nil {
		return nil, err
	}

	if len(versions) == 0 {
		return nil, &ParseError{URL: url, Err: errNoVersions}
	}
	return versions, nil
}

// GetLatestVersion returns the newest data version.
func (l *Loader) GetLatestVersion(ctx context.Context) (string, error) {
	versions, err := l.GetVersions(ctx)
	if err != nil {
		return "", err
	}
	return versions[0], nil
}
