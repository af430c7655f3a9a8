package main

var opts struct {
	ZooKeeper struct {
		Host           string `long:"host" env:"HOST" default:"127.0.0.1" description:"zookeeper host"`
		Port           int    `long:"port" env:"PORT" default:"2181" description:"zookeeper port"`
		SessionTimeout int    `long:"session-timeout" env:"SESSION_TIMEOUT" default:"10" description:"session timeout (sec)"`
	} `group:"zookeeper" namespace:"zk" env-namespace:"ZK"`

	Serverset struct {
		Path             string `long:"path" env:"PATH" required:"true" description:"serverset root znode"`
		PollInterval     int    `long:"poll-interval" env:"POLL_INTERVAL" default:"5000" description:"poll interval (ms)"`
		FetchConcurrency int    `long:"fetch-concurrency" env:"FETCH_CONCURRENCY" default:"8" description:"parallel member fetches per cycle"`
	} `group:"serverset" namespace:"serverset" env-namespace:"SERVERSET"`

	HTTP struct {
		BindAddr string `long:"bind-addr" env:"BIND_ADDR" default:":8080" description:"address to bind http server"`
	} `group:"http" namespace:"http" env-namespace:"HTTP"`

	Announce struct {
		Enabled bool   `long:"enabled" env:"ENABLED" description:"announce this process as a serverset member"`
		Name    string `long:"name" env:"NAME" description:"member znode name (sequential member_ node when empty)"`
		Host    string `long:"host" env:"HOST" description:"advertised host"`
		Port    uint16 `long:"port" env:"PORT" description:"advertised port"`
	} `group:"announce" namespace:"announce" env-namespace:"ANNOUNCE"`

	Verbose bool `long:"verbose" env:"VERBOSE" description:"verbose mode"`
}
