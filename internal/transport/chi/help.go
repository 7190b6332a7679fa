package chi

// helpText is served at GET /.
const helpText = `
    ISS TRACKER

    Informational and management routes:

    /                                                            (GET) print this information
    /load                                                        (POST) load data in from files to memory
    /health                                                      (GET) service health
    /metrics                                                     (GET) prometheus metrics

    Routes for querying positional and velocity data:

    /epochs                                                      (GET) list all epochs
    /epochs/<epoch>                                              (GET) all data on a specific epoch

    Routes for querying sighting data:

    /countries                                                   (GET) list all countries
    /countries/<country>                                         (GET) all data on sightings in country
    /countries/<country>/regions                                 (GET) list all regions in country
    /countries/<country>/regions/<region>                        (GET) all data on sightings in region
    /countries/<country>/regions/<region>/cities                 (GET) list all cities in region
    /countries/<country>/regions/<region>/cities/<city>          (GET) all data on sightings in city

`

// Plain-text responses.
const (
	notLoadedText   = "WARNING: Data not loaded into memory, use a POST request to the route /load\n"
	loadWithGETText = "Please perform a POST request to this route to properly load the data\n"
	loadedText      = "Data has been read from files\n"
)
