// Package config loads the serverless-style project file that declares an
// AppSync API and the simulator's options.
//
// The file is YAML (.yml, .yaml) or JSON, detected by extension:
//
//	service: blog
//	functions:
//	  checkAuthor:
//	    handler: handler.checkAuthor
//	custom:
//	  appsync-simulator:
//	    apiKey: ${env:API_KEY, 0123456789}
//	    dynamoDb:
//	      endpoint: http://localhost:8000
//	  appSync:
//	    name: blog
//	    authenticationType: API_KEY
//	    mappingTemplates:
//	      - type: Query
//	        field: getPost
//	        dataSource: posts
//	    dataSources:
//	      - name: posts
//	        type: AMAZON_DYNAMODB
//	        config:
//	          tableName: Posts
//
// ${env:NAME} and ${env:NAME, default} references are expanded from the
// process environment before the file is parsed. APPSYNC_SIMULATOR_*
// environment variables override the simulator options afterwards.
package config
