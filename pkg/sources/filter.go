package sources

// Filter returns data sources with the given IDs, in the order of the
// configuration file. The second value holds requested IDs that are
// absent from the configuration. Empty ids select all sources.
func (c *SourcesConfig) Filter(ids []int) ([]DataSourceConfig, []int) {
	if len(ids) == 0 {
		return c.DataSources, nil
	}

	requested := make(map[int]bool)
	for _, id := range ids {
		requested[id] = false
	}

	var res []DataSourceConfig
	for _, src := range c.DataSources {
		if _, ok := requested[src.ID]; ok {
			res = append(res, src)
			requested[src.ID] = true
		}
	}

	var missing []int
	for _, id := range ids {
		if !requested[id] {
			missing = append(missing, id)
			// prevents duplicates in missing
			requested[id] = true
		}
	}
	return res, missing
}
