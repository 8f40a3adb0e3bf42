package consts

const (
	UsersRecordKey    = "inkstone:records:users"
	WritingsRecordKey = "inkstone:records:writings"
	AnalyticsCacheKey = "inkstone:analytics:aggregate"
)
