package classify

import (
	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// descriptors lists, per category, the closed subtype token set and the
// attribute keys copied onto the feature. Tokens are OSM tag values.
var descriptors = []Descriptor{
	{
		Category: geotiles.CategoryAerialway,
		Tokens: []string{
			"cable_car", "chair_lift", "drag_lift", "gondola", "goods", "j-bar", "magic_carpet",
			"mixed_lift", "platter", "pylon", "rope_tow", "t-bar", "station", "zip_line",
		},
		Attributes: []string{
			"access", "duration", "ele", "fee", "foot", "incline", "maxspeed", "maxweight", "name",
			"oneway", "opening_hours", "operator", "toll", "usage", "website",
		},
	},
	{
		Category: geotiles.CategoryAeroway,
		Tokens: []string{
			"aerodrome", "apron", "gate", "hangar", "helipad", "heliport", "navigationaid", "runway",
			"spaceport", "taxiway", "terminal", "windsock",
		},
		Attributes: []string{"description", "iata", "icao", "name", "operator", "surface"},
	},
	{
		Category: geotiles.CategoryAmenity,
		Tokens: []string{
			// Sustenance
			"bar", "bbq", "biergarten", "cafe", "drinking_water", "fast_food", "food_court", "ice_cream",
			"pub", "restaurant",
			// Education
			"college", "driving_school", "kindergarten", "language_school", "library", "toy_library",
			"music_school", "school", "university",
			// Transportation
			"bicycle_parking", "bicycle_repair_station", "bicycle_rental", "boat_rental", "boat_sharing",
			"bus_station", "car_rental", "car_sharing", "car_wash", "vehicle_inspection", "charging_station",
			"ferry_terminal", "fuel", "grit_bin", "motorcycle_parking", "parking", "parking_entrance",
			"parking_space", "taxi",
			// Financial
			"atm", "bank", "bureau_de_change",
			// Healthcare
			"baby_hatch", "clinic", "dentist", "doctors", "hospital", "nursing_home", "pharmacy",
			"social_facility", "veterinary",
			// Entertainment
			"arts_centre", "brothel", "casino", "cinema", "community_centre", "fountain", "gambling",
			"nightclub", "planetarium", "public_bookcase", "social_centre", "stripclub", "studio",
			"swingerclub", "theatre",
			// Others
			"animal_boarding", "animal_shelter", "baking_oven", "bench", "childcare", "clock",
			"conference_centre", "courthouse", "crematorium", "dive_centre", "embassy", "fire_station",
			"firepit", "give_box", "grave_yard", "gym", "hunting_stand", "internet_cafe", "kitchen",
			"kneipp_water_cure", "marketplace", "monastery", "photo_booth", "place_of_worship", "police",
			"post_box", "post_depot", "post_office", "prison", "public_bath", "public_building",
			"ranger_station", "recycling", "refugee_site", "sanitary_dump_station", "sauna", "shelter",
			"shower", "telephone", "toilets", "townhall", "vending_machine", "waste_basket",
			"waste_disposal", "waste_transfer_station", "watering_place", "water_point",
		},
		Attributes: []string{
			"access", "amperage", "backrest", "beds", "bottle", "brand", "brewery", "building", "capacity",
			"cargo", "colour", "contact", "covered", "cuisine", "date", "delivery", "denomination",
			"description", "diet", "direction", "drink", "drinking_water", "drive_through", "emergency",
			"fee", "fuel", "indoor", "lit", "material", "name", "network", "opening_hours", "operator",
			"payment", "phone", "religion", "seats", "self_service", "smoking", "socket", "voltage",
			"website", "wheelchair",
		},
	},
	{
		Category: geotiles.CategoryBarrier,
		Tokens: []string{
			"block", "bollard", "border_control", "bump_gate", "bus_trap", "cable_barrier", "cattle_grid",
			"chain", "city_wall", "cycle_barrier", "debris", "ditch", "entrance", "fence",
			"full-height_turnstile", "gate", "guard_rail", "hampshire_gate", "handrail", "hedge",
			"height_restrictor", "horse_stile", "jersey_barrier", "kerb", "kissing_gate", "lift_gate", "log",
			"motorcycle_barrier", "retaining_wall", "rope", "sally_port", "spikes", "stile", "sump_buster",
			"swing_gate", "toll_booth", "turnstile", "wall",
		},
		Attributes: []string{
			"access", "bicycle", "fee", "foot", "two_sided", "handrail", "height", "highway", "historic",
			"intermittent", "lanes", "locked", "maxheight", "maxwidth", "motor_vehicle", "operator",
			"wheelchair", "width",
		},
	},
	{
		Category:   geotiles.CategoryBoundary,
		Tokens:     []string{"administrative", "political"},
		Attributes: []string{"admin_level", "name"},
	},
	{
		Category: geotiles.CategoryBuilding,
		Tokens: []string{
			"apartments", "bakehouse", "barn", "bridge", "bunker", "bungalow", "cabin", "carport",
			"cathedral", "chapel", "church", "civic", "commercial", "conservatory", "construction",
			"cowshed", "detached", "digester", "dormitory", "farm", "farm_auxiliary", "fire_station",
			"garage", "garages", "gatehouse", "ger", "government", "grandstand", "greenhouse", "hangar",
			"hospital", "hotel", "house", "houseboat", "hut", "industrial", "kindergarten", "kiosk",
			"mosque", "office", "parking", "pavilion", "portable_classroom", "public", "religious",
			"residential", "retail", "riding_hall", "roof", "ruins", "school", "semidetached_house",
			"service", "shed", "shrine", "sports_hall", "slurry_tank", "stable", "stadium",
			"static_caravan", "sty", "supermarket", "synagogue", "temple", "terrace", "toilets",
			"train_station", "transformer_tower", "transportation", "tree_house", "university",
			"warehouse", "water_tower", "yes",
		},
		Attributes: []string{
			"access", "amenity", "capacity", "covered", "entrance", "height", "building:levels", "name",
			"office", "operator", "power", "public_transport", "shop", "sport",
		},
	},
	{
		Category: geotiles.CategoryCraft,
		Tokens: []string{
			"agricultural_engines", "atelier", "bakery", "basket_maker", "beekeeper", "blacksmith",
			"boatbuilder", "bookbinder", "brewery", "builder", "cabinet_maker", "car_painter", "carpenter",
			"carpet_layer", "caterer", "chimney_sweeper", "clockmaker", "confectionery", "cooper",
			"dental_technician", "distillery", "door_construction", "dressmaker", "electronics_repair",
			"embroiderer", "electrician", "engraver", "floorer", "gardener", "glaziery", "goldsmith",
			"grinding_mill", "handicraft", "hvac", "insulation", "interior_work", "jeweller", "joiner",
			"key_cutter", "locksmith", "metal_construction", "mint", "musical_instrument", "oil_mill",
			"optician", "organ_builder", "painter", "parquet_layer", "paver", "photographer",
			"photographic_laboratory", "piano_tuner", "plasterer", "plumber", "pottery", "printer",
			"printmaker", "rigger", "roofer", "saddler", "sailmaker", "sawmill", "scaffolder", "sculptor",
			"shoemaker", "signmaker", "stand_builder", "stonemason", "sun_protection", "tailor", "tiler",
			"tinsmith", "toolmaker", "turner", "upholsterer", "watchmaker", "water_well_drilling",
			"window_construction", "winery",
		},
		Attributes: []string{
			"builder", "brand", "carpenter", "contact", "distillery", "electronics", "electronics_repair",
			"fax", "healthcare", "industrial", "microbrewery", "musical_instrument", "name",
			"opening_hours", "operator", "phone", "produce", "repair", "studio", "website", "wheelchair",
		},
	},
	{
		Category: geotiles.CategoryEmergency,
		Tokens: []string{
			"ambulance_station", "assembly_point", "defibrillator", "drinking_water", "dry_riser_inlet",
			"emergency_ward_entrance", "fire_alarm_box", "fire_extinguisher", "fire_hose", "fire_hydrant",
			"landing_site", "lifeguard", "lifeguard_base", "lifeguard_platform", "lifeguard_tower",
			"life_ring", "phone", "suction_point", "siren", "water_tank",
		},
		Attributes: []string{
			"access", "colour", "couplings", "defibrillator", "description", "direction", "entrance",
			"height", "indoor", "manufacturer", "model", "name", "opening_hours", "operator", "phone",
			"support", "water_source",
		},
	},
	{
		Category:   geotiles.CategoryGeological,
		Tokens:     []string{"moraine", "outcrop", "palaeontological_site"},
		Attributes: []string{"name", "surface"},
	},
	{
		Category: geotiles.CategoryHealthcare,
		Tokens: []string{
			"alternative", "audiologist", "birthing_center", "blood_bank", "blood_donation", "counselling",
			"dialysis", "hospice", "laboratory", "midwife", "nurse", "occupational_therapist",
			"optometrist", "physiotherapist", "podiatrist", "psychotherapist", "rehabilitation",
			"sample_collection", "speech_therapist", "vaccination_centre",
		},
		Attributes: []string{"name", "opening_hours", "operator", "phone", "vaccination", "website", "wheelchair"},
	},
	{
		Category: geotiles.CategoryHighway,
		Tokens: []string{
			"bridleway", "bus_guideway", "bus_stop", "construction", "corridor", "crossing", "cycleway",
			"escape", "footway", "living_street", "motorway", "motorway_link", "path", "pedestrian",
			"primary", "primary_link", "proposed", "raceway", "road", "residential", "secondary",
			"secondary_link", "service", "steps", "stop", "street_lamp", "tertiary", "tertiary_link",
			"track", "traffic_signals", "trunk", "trunk_link", "turning_circle", "unclassified",
		},
		Attributes: []string{
			"name", "abutters", "access", "bicycle", "bus", "destination", "expressway", "foot", "hgv",
			"lanes", "lit", "maxspeed", "motor_vehicle", "motorcar", "motorroad", "oneway", "operator",
			"service", "shelter", "sidewalk", "sport", "smoothness", "surface", "tracktype", "wheelchair",
			"width",
		},
	},
	{
		Category: geotiles.CategoryHistoric,
		Tokens: []string{
			"aircraft", "aqueduct", "archaeological_site", "battlefield", "bomb_crater", "boundary_stone",
			"building", "cannon", "castle", "castle_wall", "charcoal_pile", "church", "city_gate",
			"citywalls", "farm", "fort", "gallows", "highwater_mark", "locomotive", "manor", "memorial",
			"milestone", "monastery", "monument", "optical_telegraph", "pillory", "railway_car", "ruins",
			"rune_stone", "ship", "tank", "tomb", "tower", "wayside_cross", "wayside_shrine", "wreck",
		},
		Attributes: []string{
			"architect", "artist_name", "bridge", "castle_type", "collection", "date", "denomination",
			"depth", "description", "disused", "ele", "flood_date", "format", "gauge", "height", "heritage",
			"image", "inscription", "location", "manufacturer", "material", "memorial", "moved", "name",
			"network", "operator", "optical_telegraph", "railway_car", "religion", "ruins", "site_type",
			"start_date", "support", "tomb", "website", "wikipedia", "year",
		},
	},
	{
		Category: geotiles.CategoryLanduse,
		Tokens: []string{
			"allotments", "basin", "brownfield", "cemetery", "commercial", "conservation", "construction",
			"depot", "farmland", "farmyard", "flowerbed", "forest", "garages", "grass", "greenfield",
			"greenhouse_horticulture", "industrial", "landfill", "meadow", "military", "orchard",
			"peat_cutting", "plant_nursery", "port", "quarry", "railway", "recreation_ground", "religious",
			"reservoir", "residential", "retail", "salt_pond", "village_green", "vineyard",
		},
		Attributes: []string{
			"barrier", "crop", "denomination", "genus", "industrial", "leaf_cycle", "leaf_type", "meadow",
			"name", "operator", "plant", "religion", "resource", "species", "trees",
		},
	},
	{
		Category: geotiles.CategoryLeisure,
		Tokens: []string{
			"adult_gaming_centre", "amusement_arcade", "beach_resort", "bandstand", "bird_hide", "common",
			"dance", "disc_golf_course", "dog_park", "escape_game", "firepit", "fishing", "fitness_centre",
			"fitness_station", "garden", "hackerspace", "horse_riding", "ice_rink", "marina",
			"miniature_golf", "nature_reserve", "park", "picnic_table", "pitch", "playground", "slipway",
			"sports_centre", "stadium", "summer_camp", "swimming_area", "swimming_pool", "track",
			"water_park",
		},
		Attributes: []string{
			"access", "barrier", "building", "covered", "fee", "lit", "name", "seasonal", "shelter",
			"sport", "surface",
		},
	},
	{
		Category: geotiles.CategoryManMade,
		Tokens: []string{
			"adit", "beacon", "breakwater", "bridge", "bunker_silo", "carpet_hanger", "chimney",
			"communications_tower", "crane", "cross", "cutline", "clearcut", "dovecote", "dyke",
			"embankment", "flagpole", "gasometer", "goods_conveyor", "groyne", "kiln", "lighthouse", "mast",
			"mineshaft", "monitoring_station", "obelisk", "observatory", "offshore_platform",
			"petroleum_well", "pier", "pipeline", "pumping_station", "reservoir_covered", "silo",
			"snow_fence", "snow_net", "storage_tank", "street_cabinet", "surveillance", "survey_point",
			"telescope", "tower", "wastewater_plant", "watermill", "water_tower", "water_well", "water_tap",
			"water_works", "wildlife_crossing", "windmill", "works",
		},
		Attributes: []string{
			"access", "bridge", "capacity", "color", "content", "country", "covered", "cutline", "depth",
			"direction", "display", "disused", "drinking_water", "ele", "floating", "height", "headframe",
			"inscription", "layer", "landuse", "length", "location", "material", "mine", "mineshaft_type",
			"monitoring", "mooring", "name", "operator", "oven", "power", "product", "pump",
			"pumping_station", "resource", "species", "start_date", "street_cabinet", "submerged",
			"substance", "support", "surveillance", "survey_point", "tidal", "tourism", "tunnel", "width",
		},
	},
	{
		Category: geotiles.CategoryMilitary,
		Tokens: []string{
			"airfield", "bunker", "barracks", "checkpoint", "danger_area", "naval_base",
			"nuclear_explosion_site", "obstacle_course", "office", "range", "training_area", "trench",
		},
		Attributes: []string{
			"access", "bunker_type", "description", "distance", "end_date", "gun_turret", "iata", "icao",
			"location", "military_service", "name", "office", "opening_hours", "operator", "start_date",
			"surface", "trench",
		},
	},
	{
		Category: geotiles.CategoryNatural,
		Tokens: []string{
			"wood", "tree_row", "tree", "scrub", "heath", "moor", "grassland", "fell", "bare_rock", "scree",
			"shingle", "sand", "mud", "water", "wetland", "glacier", "bay", "strait", "cape", "beach",
			"coastline", "reef", "spring", "hot_spring", "geyser", "blowhole", "peak", "volcano", "valley",
			"peninsula", "isthmus", "ridge", "arete", "cliff", "saddle", "dune", "rock", "stone",
			"sinkhole", "cave_entrance",
		},
		Attributes: []string{
			"access", "circumference", "denotation", "direction", "ele", "height", "intermittent", "genus",
			"leaf_type", "leaf_cycle", "managed", "name", "operator", "salt", "species", "surface", "taxon",
			"width",
		},
	},
	{
		Category: geotiles.CategoryOffice,
		Tokens: []string{
			"accountant", "advertising_agency", "architect", "association", "charity", "company",
			"consulting", "courier", "coworking", "diplomatic", "educational_institution",
			"employment_agency", "energy_supplier", "engineer", "estate_agent", "financial",
			"financial_advisor", "forestry", "foundation", "government", "guide", "insurance", "it",
			"lawyer", "logistics", "moving_company", "newspaper", "ngo", "notary", "political_party",
			"property_management", "quango", "religion", "research", "surveyor", "tax_advisor",
			"telecommunication", "visa", "water_utility",
		},
		Attributes: []string{
			"admin_level", "advertising", "association", "brand", "cargo", "club", "consulate",
			"consulting", "country", "denomination", "department", "diplomatic", "email", "embassy",
			"faculty", "fax", "fee", "function", "government", "hgv", "industrial", "insurance",
			"internet_access", "liaison", "name", "opening_hours", "operator", "owner", "payment", "phone",
			"religion", "research", "social_facility", "target", "website", "wheelchair",
		},
	},
	{
		Category: geotiles.CategoryPlace,
		Tokens: []string{
			"allotments", "archipelago", "borough", "city", "city_block", "continent", "country", "county",
			"district", "farm", "hamlet", "island", "islet", "isolated_dwelling", "locality",
			"municipality", "neighbourhood", "ocean", "plot", "province", "quarter", "region", "sea",
			"square", "state", "suburb", "town", "village",
		},
		Attributes: []string{
			"admin_level", "architect", "capital", "is_in", "name", "population", "ref", "start_date",
			"state_code",
		},
	},
	{
		Category: geotiles.CategoryPower,
		Tokens: []string{
			"cable", "catenary_mast", "compensator", "converter", "generator", "heliostat", "insulator",
			"line", "minor_line", "plant", "pole", "portal", "substation", "switch", "switchgear",
			"terminal", "tower", "transformer",
		},
		Attributes: []string{
			"busbar", "cables", "circuits", "colour", "compensator", "design", "frequency", "height",
			"gas_insulated", "landuse", "line", "line_attachment", "line_management", "location",
			"manufacturer", "material", "name", "operator", "phases", "poles", "start_date", "structure",
			"substation", "switch", "rating", "voltage", "windings", "wires",
		},
	},
	{
		Category: geotiles.CategoryPublicTransport,
		Tokens:   []string{"platform", "station", "stop_area", "stop_position"},
		Attributes: []string{
			"aerialway", "area", "bench", "bin", "building", "bus", "covered", "departures_board", "ferry",
			"layer", "level", "local_ref", "monorail", "name", "network", "operator",
			"passenger_information_display", "shelter", "subway", "surface", "tactile_paving", "toilet",
			"train", "tram", "trolleybus", "uic_ref", "uic_name", "wheelchair",
		},
	},
	{
		Category: geotiles.CategoryRailway,
		Tokens: []string{
			"abandoned", "buffer_stop", "construction", "crossing", "derail", "disused", "funicular",
			"halt", "level_crossing", "light_rail", "miniature", "monorail", "narrow_gauge", "platform",
			"preserved", "rail", "railway_crossing", "roundhouse", "signal", "station", "subway",
			"subway_entrance", "switch", "tram", "tram_stop", "traverser", "turntable", "wash",
		},
		Attributes: []string{
			"access", "area", "bench", "bicycle", "bin", "bridge", "capacity", "colour", "control",
			"crossing", "cutting", "disused", "electrified", "elevator", "embankment", "embedded_rails",
			"fee", "frequency", "funicular", "gauge", "highspeed", "incline", "layer", "length",
			"light_rail", "maxspeed", "monorail", "network", "oneway", "opening_hours", "operator",
			"passenger", "public_transport", "rack", "request_stop", "service", "shelter", "subway",
			"supervised", "surface", "surveillance", "tactile_paving", "toilets", "tracks", "tram",
			"tunnel", "usage", "voltage", "wheelchair", "width", "workrules",
		},
	},
	{
		Category: geotiles.CategoryRoute,
		Tokens: []string{
			"bicycle", "bus", "canoe", "detour", "ferry", "foot", "hiking", "horse", "ice_skate",
			"inline_skates", "light_rail", "mtb", "piste", "power", "railway", "road", "running", "ski",
			"subway", "train", "tracks", "tram", "trolleybus",
		},
		Attributes: []string{
			"area", "bicycle", "colour", "description", "distance", "duration", "fee", "foot", "from", "lit",
			"name", "network", "oneway", "operator", "piste:difficulty", "piste:type", "roundtrip",
			"seasonal", "symbol", "to",
		},
	},
	{
		Category: geotiles.CategoryShop,
		Tokens: []string{
			"agrarian", "alcohol", "anime", "antiques", "appliance", "art", "atv", "baby_goods", "bag",
			"bakery", "bathroom_furnishing", "beauty", "bed", "beverages", "bicycle", "boat", "bookmaker",
			"books", "boutique", "brewing_supplies", "butcher", "camera", "candles", "cannabis", "car",
			"caravan", "car_parts", "carpet", "car_repair", "charity", "cheese", "chemist", "chocolate",
			"clothes", "coffee", "collector", "computer", "confectionery", "convenience", "copyshop",
			"cosmetics", "craft", "curtain", "dairy", "deli", "department_store", "doityourself", "doors",
			"drugstore", "dry_cleaning", "e-cigarette", "electrical", "electronics", "energy", "erotic",
			"fabric", "farm", "fashion", "fashion_accessories", "fireplace", "fishing", "flooring",
			"florist", "frame", "frozen_food", "fuel", "funeral_directors", "furniture", "games",
			"garden_centre", "garden_furniture", "gas", "general", "gift", "glaziery", "golf",
			"greengrocer", "groundskeeping", "hairdresser", "hairdresser_supply", "hardware",
			"health_food", "hearing_aids", "herbalist", "hifi", "household_linen", "houseware", "hunting",
			"ice_cream", "interior_decoration", "jetski", "jewelry", "kiosk", "kitchen", "lamps",
			"laundry", "leather", "lighting", "locksmith", "lottery", "mall", "massage", "medical_supply",
			"military_surplus", "mobile_phone", "model", "money_lender", "motorcycle", "music",
			"musical_instrument", "newsagent", "nutrition_supplements", "optician", "organic", "outdoor",
			"outpost", "paint", "party", "pasta", "pastry", "pawnbroker", "perfumery", "pest_control",
			"pet", "pet_grooming", "photo", "pyrotechnics", "radiotechnics", "religion", "scuba_diving",
			"seafood", "second_hand", "security", "sewing", "shoes", "ski", "snowmobile", "spices",
			"sports", "stationery", "storage_rental", "supermarket", "swimming_pool", "tailor", "tattoo",
			"tea", "ticket", "tiles", "tobacco", "toys", "trade", "trailer", "travel_agency", "trophy",
			"tyres", "user", "vacant", "vacuum_cleaner", "variety_store", "video", "video_games",
			"watches", "water", "weapons", "wholesale", "window_blind", "windows", "wine", "wool",
		},
		Attributes: []string{
			"agrarian", "alcohol", "authorization", "bakehouse", "beauty", "books", "branch", "brand",
			"brewery", "bulk_purchase", "butcher", "cash_withdrawal", "clothes", "coffee", "collector",
			"cuisine", "delivery", "denomination", "description", "diet", "distillery", "drink",
			"dry_cleaning", "email", "fair_trade", "female", "fuel", "furniture", "ice_cream", "industrial",
			"laundry_service", "lgbtq", "licensed", "lottery", "male", "massage", "medical_supply",
			"membership", "min_age", "music", "music_genre", "musical_instrument", "name", "opening_hours",
			"operator", "organic", "origin", "oven", "ownership", "parts", "payment", "pet", "phone",
			"produce", "product", "religion", "rental", "repair", "reservation", "sales", "salt",
			"second_hand", "self_service", "service", "shoes", "stamps", "tobacco", "trade", "unisex",
			"vending", "video_games", "website", "wheelchair", "wholesale", "winery",
		},
	},
	{
		Category: geotiles.CategorySport,
		Tokens: []string{
			"american_football", "aikido", "archery", "athletics", "australian_football", "badminton",
			"bandy", "baseball", "basketball", "beachvolleyball", "biathlon", "billiards", "bmx",
			"bobsleigh", "boules", "bowls", "boxing", "bullfighting", "canadian_football", "canoe", "chess",
			"cliff_diving", "climbing", "climbing_adventure", "cockfighting", "cricket", "crossfit",
			"croquet", "curling", "cycling", "darts", "dog_agility", "dog_racing", "equestrian", "fencing",
			"field_hockey", "fitness", "floorball", "free_flying", "futsal", "gaelic_games", "golf",
			"gymnastics", "handball", "hapkido", "horseshoes", "horse_racing", "ice_hockey", "ice_skating",
			"ice_stock", "jiu-jitsu", "judo", "karate", "karting", "kickboxing", "kitesurfing", "korfball",
			"krachtbal", "lacrosse", "martial_arts", "miniature_golf", "model_aerodrome", "motocross",
			"motor", "multi", "netball", "9pin", "obstacle_course", "orienteering", "paddle_tennis",
			"padel", "parachuting", "parkour", "pelota", "pesapallo", "pickleball", "pilates",
			"pole_dance", "racquet", "rc_car", "roller_skating", "rowing", "rugby_league", "rugby_union",
			"running", "sailing", "scuba_diving", "shooting", "shot-put", "skateboard", "ski_jumping",
			"skiing", "snooker", "soccer", "speedway", "squash", "sumo", "surfing", "swimming",
			"table_tennis", "table_soccer", "taekwondo", "tennis", "10pin", "toboggan", "ultimate",
			"volleyball", "wakeboarding", "water_polo", "water_ski", "weightlifting", "wrestling", "yoga",
		},
		Attributes: []string{
			"access", "alt_name", "archery", "area", "athletics", "baseball", "billiards", "boules",
			"capacity", "climbing", "club", "cricket_nets", "darts", "depth", "ele", "height", "hoops",
			"lanes", "length", "lit", "name", "note", "opening_hours", "operator", "shooting", "source",
			"surface", "takeoff", "tidal", "wave", "website", "width",
		},
	},
	{
		Category: geotiles.CategoryTelecom,
		Tokens: []string{
			"connection_point", "data_center", "distribution_point", "exchange", "service_device",
		},
		Attributes: []string{
			"capacity", "connection_point", "location", "manufacturer", "name", "operator", "owner",
			"street_cabinet", "support",
		},
	},
	{
		Category: geotiles.CategoryTourism,
		Tokens: []string{
			"alpine_hut", "apartment", "aquarium", "artwork", "attraction", "camp_pitch", "camp_site",
			"caravan_site", "chalet", "gallery", "guest_house", "hostel", "hotel", "information", "motel",
			"museum", "picnic_site", "theme_park", "viewpoint", "wilderness_hut", "yes", "zoo",
		},
		Attributes: []string{
			"access", "aerialway", "artist_name", "artwork_subject", "artwork_type", "attraction",
			"backcountry", "balcony", "bar", "beds", "bbq", "brand", "cabins", "camp_site", "capacity",
			"caravans", "contact", "covered", "description", "dog", "drinking_water", "ele", "electricity",
			"email", "exhibit", "fee", "fireplace", "group_only", "heritage", "hot_water", "information",
			"internet_access", "kitchen", "lit", "material", "mattress", "motor_vehicle", "museum",
			"museum_type", "name", "nudism", "number_of_apartments", "openfire", "opening_hours",
			"operator", "parking", "payment", "permanent_camping", "picnic_table", "phone", "power_supply",
			"reservation", "rooms", "sanitary_dump_station", "scout", "shower", "smoking", "stars",
			"start_date", "static_caravans", "subject", "surface", "swimming_pool", "tents", "toilets",
			"washing_machine", "waste_disposal", "website", "wheelchair", "wikipedia", "winter_room", "zoo",
		},
	},
	{
		Category: geotiles.CategoryWater,
		Tokens: []string{
			"basin", "canal", "ditch", "fish_pass", "lagoon", "lake", "lock", "moat", "oxbow", "pond",
			"reflecting_pool", "reservoir", "river", "stream_pool", "wastewater",
		},
		Attributes: []string{"basin", "intermittent", "lock", "name", "reservoir_type", "salt", "seasonal"},
	},
	{
		Category: geotiles.CategoryWaterway,
		Tokens: []string{
			"boatyard", "canal", "dam", "ditch", "dock", "drain", "fairway", "fuel", "lock_gate",
			"pressurised", "river", "riverbank", "stream", "tidal_channel", "turning_point", "waterfall",
			"water_point", "weir",
		},
		Attributes: []string{
			"access", "boat", "canoe", "cemt", "depth", "diameter", "dock", "draft", "fuel", "height",
			"industrial", "intermittent", "layer", "location", "lock", "maxheight", "maxlength",
			"maxspeed", "maxwidth", "motorboat", "name", "operator", "salt", "ship", "tidal", "tunnel",
			"usage", "width",
		},
	},
}
