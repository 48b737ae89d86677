// Package rules holds the immutable reference tables the audit pipeline
// validates against. The tables mirror the consensus layer's rule set; treat
// updates as a data-versioning concern, never mutate them at runtime.
package rules

// RoleTypos maps each canonical job-title word to its known misspellings.
// Typo detection matches whole words only.
var RoleTypos = map[string][]string{
	"manager":        {"manger", "maneger", "managr", "mangaer", "manaager", "managar", "manageer", "maanger", "mamager", "mnager", "mangager", "mananger", "managaer", "managre", "maager", "managerr", "mananager", "manater", "maneger"},
	"management":     {"managment", "managemnt", "manegement", "managament", "mangement", "managenment", "managerment", "managemnet", "managemetn"},
	"director":       {"directer", "directur", "direcor", "directot", "drector", "direktor", "diector", "directior", "directr", "direcctor", "dirctor", "directore", "derector", "directoer", "direcotr", "directoor"},
	"engineer":       {"enginer", "enginear", "enigneer", "engineeer", "enginner", "enginere", "engeneer", "engnieer", "engieer", "engieneer", "engineerr", "enginee", "enegineer", "engineir", "engenear", "engineear", "engienear", "engineerng"},
	"engineering":    {"enginnering", "enginering", "engeneering", "enginneering", "engineerig", "engineerng", "engieneering", "engineerring"},
	"developer":      {"develper", "developper", "devloper", "develoer", "develeoper", "devoloper", "developor", "develope", "develoepr", "developr", "devleoper", "develpoer", "develloper", "developeer"},
	"development":    {"developement", "devlopment", "develoment", "developmnet", "develepoment", "developmentt", "developmnt", "develepment", "developmet"},
	"analyst":        {"analist", "analys", "analysit", "anlyst", "analyist", "annalyst", "analayst", "analst", "analyyst", "analyet", "analyts", "anaylst"},
	"consultant":     {"consulant", "consultent", "consutant", "consaltant", "consultat", "consultnat", "consulent", "consultannt", "consultanat", "consulatnt"},
	"specialist":     {"specalist", "specilist", "specialst", "spcialist", "specailist", "specialits", "speicalist", "specialsit", "speciliast"},
	"coordinator":    {"cordinator", "coodinator", "coordiantor", "coordinater", "cooridnator", "coordnator", "corrdinator", "coordiator", "coordintor", "cordinater"},
	"executive":      {"excutive", "exective", "executiv", "executve", "exucutive", "exectuive", "executivee", "exectutive", "executibe", "execuitve", "executuve"},
	"assistant":      {"assitant", "asistant", "assistnat", "assisant", "assitent", "asisstant", "assistent", "assistatn", "assisatnt", "assisstant"},
	"president":      {"presidant", "presedent", "presiden", "presidnet", "presindent", "presient", "presidnt", "presidenet"},
	"senior":         {"senoir", "seinor", "snior", "senioe", "seior", "senor", "senioor"},
	"junior":         {"junoir", "junioe", "jnior", "junor", "juior"},
	"architect":      {"architec", "arcitect", "architecht", "architech", "artchitect", "architct", "archtiect", "architectt", "archirect"},
	"accountant":     {"accountent", "acountant", "accountan", "acocuntant", "accoutant", "accountnat", "accounant", "accountat", "accontant"},
	"administrator":  {"administator", "adminstrator", "adminisrator", "adminsitrator", "adminstator", "administrater", "adminitrator", "administraor"},
	"representative": {"representive", "represenative", "representaive", "represetative", "representatie", "representativee", "representatve", "represntative"},
	"supervisor":     {"superviser", "supervior", "supervsior", "suprevisor", "supervisior", "supervisr", "superivsor", "superviosr", "supervisoor"},
	"marketing":      {"markting", "marketng", "makreting", "markeeting", "marketign", "marekting", "martketing", "marketinng", "marketin"},
	"operations":     {"opertions", "operatons", "oprations", "operatiosn", "opeartions", "operatins", "operaions", "opertaions"},
	"finance":        {"finace", "finanace", "financ", "fianance", "finacne", "fiannce"},
	"financial":      {"finacial", "financal", "finanical", "financila", "finanaical"},
	"associate":      {"assocaite", "asociate", "assoicate", "assocate", "associte", "associat", "asscoiate", "associae"},
	"founder":        {"foundr", "foundre", "founer", "foudner", "foundeer", "founde"},
	"officer":        {"oficer", "offcer", "officr", "offcier", "offier", "officeer"},
	"partner":        {"partener", "parter", "partnr", "partenr", "partne", "partneer"},
	"technician":     {"techician", "techncian", "technicain", "technican", "technicina"},
	"technical":      {"techincal", "tehcnical", "tecnical", "techical", "technicla"},
	"technology":     {"technolgy", "techonology", "technoloy", "techology", "technologyy"},
	"recruiter":      {"recuiter", "recruter", "recruitor", "recrutier", "recruitr"},
	"attorney":       {"attoney", "attorny", "atorney", "attornet", "attornney", "attoreny"},
	"designer":       {"desinger", "desginer", "designr", "deisgner", "designeer", "desiner"},
	"strategist":     {"strategis", "startegist", "stratagist", "stategist", "strategsit"},
	"business":       {"busines", "buisness", "bussiness", "busniess", "buisines", "bussines", "businss", "busienss", "busniness", "bsuiness"},
	"customer":       {"custmer", "cutomer", "custormer", "cusotmer", "customr", "custommer"},
	"product":        {"prodcut", "porduct", "prduct", "proudct", "produc", "producct"},
	"project":        {"porject", "proejct", "projec", "prject", "proect", "projct"},
	"software":       {"sofware", "sotware", "softwre", "softare", "sofwtare", "softwear"},
	"professional":   {"proffesional", "profesional", "proffessional", "professinal", "professionl", "professonal", "profssional", "professsional"},
	"corporate":      {"corproate", "coporate", "corporat", "corpoarte", "coroprate"},
	"support":        {"suport", "supprot", "supprt", "suppoort", "suppport"},
	"service":        {"servcie", "serivce", "sevice", "servic", "servcice"},
	"security":       {"secuirty", "securtiy", "secutiry", "securty", "secuiryt"},
	"resource":       {"resoruce", "resourc", "resrouce", "reource"},
	"principal":      {"princpal", "prinicpal", "pricipal", "principla", "prnicipal"},
	"commercial":     {"commerical", "comercial", "commericial", "commercail"},
	"regional":       {"reginal", "regioanl", "regioal", "regionl", "reagional"},
	"national":       {"natioal", "nationl", "natoinal", "nationla", "naitonal"},
	"international":  {"internatioanl", "internatinal", "interantional", "internationl"},
	"general":        {"genral", "generl", "genaral", "generla", "genearl"},
	"compliance":     {"complience", "compliace", "compliane", "complicance"},
	"procurement":    {"procurment", "procuremnt", "procuremennt", "procurrement"},
	"acquisition":    {"aquisition", "acquistion", "acquisiton", "acqusition"},
	"logistics":      {"logisitics", "logisitcs", "logstics", "logistcs"},
	"manufacturing":  {"manufacuring", "manufaturing", "manufacturng", "manufactruing"},
	"pharmaceutical": {"pharmeceutical", "pharamceutical", "pharmaceuitcal"},
	"healthcare":     {"heathcare", "helathcare", "healtcare", "healthcre"},
	"education":      {"educaton", "educaiton", "educaion", "eductaion"},
	"government":     {"goverment", "governmnet", "govenrment", "govermnent"},
	"investment":     {"investmnet", "investement", "investemnt", "invesment"},
	"insurance":      {"insurace", "insurnace", "insurence", "insurancce"},
	"leadership":     {"leaderhsip", "leadershi", "leadershp", "leadeership"},
	"entrepreneur":   {"entrepeneur", "entreprener", "entreprenuer", "entreprneur", "enterprenuer", "entreperneur", "entreprenur"},
	"certified":      {"certifed", "certiifed", "cetified", "cretified", "certifeid"},
}

// RolePlaceholders are exact-match throwaway values.
var RolePlaceholders = []string{
	"asdfgh", "qwerty", "zxcvbn", "asdf", "qwer", "zxcv",
	"aaaaaa", "bbbbbb", "test", "testing", "xxx", "yyy", "zzz",
	"null", "undefined", "none", "n/a", "na", "tbd", "tba",
	"placeholder", "temp", "todo", "fixme", "abc", "xyz",
}

// RoleScamPatterns are substrings that mark get-rich-quick or MLM titles.
var RoleScamPatterns = []string{
	"work from home", "work at home", "make money", "earn money",
	"passive income", "get rich", "easy money", "be your own boss",
	"mlm", "multi level marketing", "network marketing",
	"crypto trader", "forex trader", "bitcoin trader", "day trader",
	"investment opportunity", "financial freedom", "side hustle",
	"join my team", "dm me", "click link", "link in bio",
	"work online", "online business", "home based",
}

// RoleURLTLDs catch website fragments smuggled into the role field.
var RoleURLTLDs = []string{
	"com", "org", "io", "ai", "co", "dev", "app", "xyz", "me", "ly", "gg",
	"edu", "gov", "info", "biz", "tech", "cloud", "online", "site", "store",
	"us", "uk", "ca", "de", "fr", "in", "au", "nl", "es", "it", "br", "jp", "kr", "cn", "ru",
	"tv", "fm", "games", "life", "work", "realty", "agency", "digital", "media",
	"world", "global", "solutions", "services", "consulting", "network", "systems",
	"ventures", "capital", "finance", "money", "company", "group", "team", "studio",
	"design", "marketing", "software", "tools", "health", "healthcare", "legal", "law",
	"news", "blog", "space", "zone", "link", "click", "today", "one", "pro", "expert",
	"careers", "jobs",
}

// RoleJobKeywords are recognized job-title words; long roles must contain one.
var RoleJobKeywords = []string{
	"manager", "director", "engineer", "developer", "analyst", "consultant",
	"specialist", "coordinator", "assistant", "executive", "officer", "lead",
	"head", "chief", "president", "vp", "vice", "senior", "junior", "associate",
	"partner", "founder", "owner", "ceo", "cto", "cfo", "coo", "cmo", "cio",
	"sales", "marketing", "operations", "admin", "supervisor", "representative",
	"architect", "designer", "writer", "editor", "producer", "teacher", "professor",
	"coach", "trainer", "nurse", "doctor", "attorney", "lawyer", "accountant",
	"advisor", "adviser", "strategist", "planner", "recruiter", "broker",
}

// RoleGeographicEndings catch per-region role duplication used to inflate
// submission counts.
var RoleGeographicEndings = []string{
	"-vietnam", "-cambodia", "-apac", "-emea", "-latam", "-amer",
	"-asia", "-europe", "-africa", "-india", "-china", "-japan",
	"- vietnam", "- cambodia", "- apac", "- emea", "- latam",
}

// RoleCSuiteTitles in list order; more than one in a role is role stuffing.
var RoleCSuiteTitles = []string{"ceo", "cfo", "cto", "coo", "cmo", "cio", "cso", "cro", "cco", "cpo"}
