package domain

import "github.com/google/uuid"

// Producer identifiers name the processing step that emitted a message.
// They are stamped as the causation id on sourcing requests and domain
// events, so a consumer can tell which processor asked for a document or
// produced an event. Values are fixed; changing one breaks attribution
// across deployments.
var (
	ProducerFranchise     = uuid.MustParse("1a6b5a10-93f4-4c6e-8d2a-0f71c3b4e101")
	ProducerTeamSeason    = uuid.MustParse("2b7c6b21-a405-4d7f-9e3b-1a82d4c5f202")
	ProducerGroupSeason   = uuid.MustParse("3c8d7c32-b516-4e80-af4c-2b93e5d60303")
	ProducerSeasonWeek    = uuid.MustParse("4d9e8d43-c627-4f91-b05d-3ca4f6e71404")
	ProducerEvent         = uuid.MustParse("5eaf9e54-d738-40a2-c16e-4db507f82505")
	ProducerCompetition   = uuid.MustParse("6fb0af65-e849-41b3-d27f-5ec618092606")
	ProducerCompetitor    = uuid.MustParse("70c1b076-f95a-42c4-e380-6fd7291a3707")
	ProducerOdds          = uuid.MustParse("81d2c187-0a6b-43d5-f491-70e83a2b4808")
	ProducerAthlete       = uuid.MustParse("92e3d298-1b7c-44e6-a5a2-81f94b3c5909")
	ProducerAthleteSeason = uuid.MustParse("a3f4e3a9-2c8d-45f7-b6b3-920a5c4d6a0a")
	ProducerStatistics    = uuid.MustParse("b405f4ba-3d9e-4608-c7c4-a31b6d5e7b0b")
)
